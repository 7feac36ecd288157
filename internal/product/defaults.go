package product

// defaultEntries is the reference table shipped with the converter.
func defaultEntries() []Info {
	u := Undefined
	return []Info{
		// Model fields
		{"0C_height", "mete", u, -99, 0, "Model_FreezingLevel", "meter", "Freezing Height Radar mMSL"},
		{"Dew_Point_T", "C", u, -99, 0, "Model_DewPoint", "Celsius", "Model Surface Dew Point Temperature"},
		{"T_model_sfc", "C", u, -99, 0, "Model_SurfaceTemp", "Celsius", "Model Surface Temperature"},
		{"WBT", "C_Deg", u, -99, 0, "Model_WetBulbTemp", "Celsius", "Model Surface Wet Bulb Temperature"},
		{"WarmRainProbs", "perce", u, -99, 0, "Model_WarmRainProbs", "percent", "Probability of Warm Rain Processes"},
		{"Precip_Water", "mm", u, -99, 0, "Model_PrecipWater", "mm", "Precipitable Water"},
		{"Precip_Eff", "mm", u, -99, 0, "Model_PrecipEff", "mm", "Precipitation Efficiency"},

		// Bright band heights
		{"bb_bottom_height", "m", u, -999, 0, "BB_BOTTOM", "meters", "Brightband Top Radar/RUC derived"},
		{"bb_top_height", "m", u, -999, 0, "BB_TOP", "meters", "Brightband Bottom Radar/RUC derived"},

		// 3D reflectivity (3D and 2D sets)
		{"mosaicked_refl", "dbz", -99, -999, 0, "MREFL", "dBZ", "Mosaicked Reflectivity"},
		{"mosaicked_kdp", "degre", -20, -30, 0, "MKDP", "degrees", "Mosaicked Kdp"},
		{"mosaicked_rhohv", "none", -99, -999, 0, "MRHOHV", "none", "Mosaicked RhoHV"},
		{"mosaicked_spw", "m/sec", -99, -999, 0, "MSPW", "m/s", "Mosaicked Spectrumwidth"},
		{"mosaicked_zdr", "db", -99, -999, 0, "MZDR", "dB", "Mosaicked Zdr"},

		// Derived from 3D reflectivity
		{"CREF", "dBZ", -99, -999, 0, "CREF", "dBZ", "Composite Reflectivity"},
		{"CREFH", "m", -1, -999, 0, "CREFH", "kilometers", "Composite Reflectivity Height - kmMSL"},
		{"LCR_LOW", "dBZ", -99, -999, 0, "LCR_LOW", "dBZ", "Layer Composite Reflectivity Mosaic 0-24kft (low altitude)"},
		{"LCR_HIGH", "dBZ", -99, -999, 0, "LCR_HIGH", "dBZ", "Layer Composite Reflectivity Mosaic 24-60kft (highest altitude)"},
		{"LCR_SUPER", "dBZ", -99, -999, 0, "LCR_SUPER", "dBZ", "Layer Composite Reflectivity Mosaic 33-60kft (super high altitude)"},
		{"ETP", "km", -1, -999, 0, "ETP", "kilometers", "Echo Top 18dBZ Mosaic - kmMSL"},
		{"STRMTOP", "km", -1, -999, 0, "STRMTOP", "kilometers", "Storm Top 30dBZ Mosaic - kmMSL"},
		{"MEHS", "mm", -99, -999, 0, "MEHS", "mm", "Max Expected Hail Size"},
		{"SHI", "none", -99, -999, 0, "SHI", "none", "Severe Hail Index"},
		{"POSH", "none", -99, -999, 0, "POSH", "none", "Probability of Severe Hail"},
		{"LCREF", "dBZ", -99, -999, 0, "LCREF", "dBZ", "Low-Level Composite Reflectivity (0-4km)"},
		{"LCREFH", "m", -1, -999, 0, "LCREFH", "kilometers", "Low-Level Composite Reflectivity Height - kmMSL"},
		{"VIL", "kg/m2", -99, -999, 0, "VIL", "kg/m2", "Vertically Integrated Liquid"},
		{"VILD", "g/m3", -99, -999, 0, "VILD", "g/m3", "Vertically Integrated Liquid Density"},
		{"TREFL_0C", "dBZ", -99, -999, 0, "TREFL_0C", "dBZ", "Reflectivity at the Height of 0 degC isotherm"},
		{"TREFL_-10C", "dBZ", -99, -999, 0, "TREFL_-10C", "dBZ", "Reflectivity at the Height of -10 degC isotherm"},

		// 2D mosaics
		{"UNQC_CREF", "dBZ", -99, -999, 0, "UNQC_CREF", "dBZ", "UnQC'd Composite Reflectivity Mosaic 0-60kft (max ref)"},
		{"BASE_REFL", "dBZ", -99, -999, 0, "BASE_REFL", "dBZ", "Mosaic Base Reflectivity (optimal method)"},
		{"CREF_MAX", "dBZ", -99, -999, 0, "CREF_MAX", "dBZ", "Composite Reflectivity Mosaic 0-60kft (max ref)"},

		// Seamless hybrid scan reflectivity
		{"RADCOVERID", "flag", -1, u, 0, "RADCOVERID", "none", "Radar Coverage ID"},
		{"RQI", "index", -1, -999, 0, "RQI", "none", "Radar Quality Index"},
		{"SHSRH", "kmAGL", -1, -1, 0, "SHSRH", "kilometers", "Height of Hybrid Scan Reflectivity - kmAGL"},
		{"SHSR", "dBZ", -99, -999, 0, "SHSR", "dBZ", "Seamless Hybrid Scan Reflectivity Mosaic"},
		{"SHSR_NOVPRC", "dBZ", -99, -999, 0, "SHSR_NOVPRC", "dBZ", "Seamless Hybrid Scan Reflectivity Mosaic without VPR Correction"},
		{"SHSR_NOADJ", "dBZ", -99, -999, 0, "SHSR_NOADJ", "dBZ", "Seamless Hybrid Scan Reflectivity Mosaic without power adjustements or VPR Correction"},

		// Precipitation flag
		{"PCP_PHASE", "flag", 0, -1, 0, "PCP_PHASE", "none", "Precip phase (noprecip=0; liquid=1; frozen=3; )"},
		{"PCPFLAG", "flag", 0, -1, 0, "PCP_FLAG", "none", "Precip flag (noprecip=0; stratiform=1; brightband=2; snow=3; overshooting=4; convective=6; hail=7; cold stratiform=10; stratiform ID'd as tropical=91; convective ID'd as tropical=96)"},

		// QPE
		{"preciprate", "mm/hr", 0, -999, 0, "PRECIPRATE", "mm/hr", "Precipitation Rate based on SHSR"},
		{"rad_1h", "mm", 0, -999, 0, "RAD_1H", "mm", "Precipitation 1-hour Accumulation based on SHSR"},
		{"rad_6h", "mm", 0, -999, 0, "RAD_6H", "mm", "Precipitation 6-hour Accumulation based on SHSR"},
		{"rad_24h", "mm", 0, -999, 0, "RAD_24H", "mm", "Precipitation 24-hour Accumulation based on SHSR"},
		{"preciprate.novprc", "mm/hr", 0, -999, 0, "PRECIPRATE_NOVPRC", "mm/hr", "Precipitation Rate based on SHSR without VPR Correction"},
		{"rad_novprc_1h", "mm", 0, -999, 0, "RAD_NOVPRC_1H", "mm", "Precipitation 1-hour Accumulation based on SHSR without VPR Correction"},
		{"rad_novprc_6h", "mm", 0, -999, 0, "RAD_NOVPRC_6H", "mm", "Precipitation 6-hour Accumulation based on SHSR without VPR Correction"},
		{"rad_novprc_24h", "mm", 0, -999, 0, "RAD_NOVPRC_24H", "mm", "Precipitation 24-hour Accumulation based on SHSR without VPR Correction"},
		{"preciprate.evap", "mm/hr", 0, -999, 0, "PRECIPRATE_EVAP", "mm/hr", "Evaporation Corrected Precipitation Rate"},
		{"15MRAD.EVAP", "mm", 0, -999, 0, "RAD_EVAP_15M", "mm", "Evaporation Corrected Precipitation 15-minute Accumulation"},
		{"rad_evap_1h", "mm", 0, -999, 0, "RAD_EVAP_1H", "mm", "Evaporation Corrected Precipitation 1-hour Accumulation"},
		{"rad_evap_3h", "mm", 0, -999, 0, "RAD_EVAP_3H", "mm", "Evaporation Corrected Precipitation 3-hour Accumulation"},
		{"rad_evap_6h", "mm", 0, -999, 0, "RAD_EVAP_6H", "mm", "Evaporation Corrected Precipitation 6-hour Accumulation"},
		{"rad_evap_12h", "mm", 0, -999, 0, "RAD_EVAP_12H", "mm", "Evaporation Corrected Precipitation 12-hour Accumulation"},
		{"rad_evap_24h", "mm", 0, -999, 0, "RAD_EVAP_24H", "mm", "Evaporation Corrected Precipitation 24-hour Accumulation"},
		{"rad_evap_48h", "mm", 0, -999, 0, "RAD_EVAP_48H", "mm", "Evaporation Corrected Precipitation 48-hour Accumulation"},
		{"rad_evap_72h", "mm", 0, -999, 0, "RAD_EVAP_72H", "mm", "Evaporation Corrected Precipitation 72-hour Accumulation"},
		{"rad_evap_since12z", "mm", 0, -999, 0, "RAD_EVAP_SINCE_12Z", "mm", "Evaporation Corrected Precipitation Since 12Z Accumulation"},
		{"1HGC", "mm", -99, -999, 0, "GC_1H", "mm", "Gauge Corrected Precipitation 1-hour Accumulation based on SHSR"},
		{"q3rad_gc_1h", "mm", -99, -999, 0, "GC_1H", "mm", "Gauge Corrected Precipitation 1-hour Accumulation based on SHSR"},
		{"q3rad_gc_6h", "mm", -99, -999, 0, "GC_6H", "mm", "Gauge Corrected Precipitation 6-hour Accumulation based on SHSR"},
		{"q3rad_gc_24h", "mm", -99, -999, 0, "GC_24H", "mm", "Gauge Corrected Precipitation 24-hour Accumulation based on SHSR"},
		{"gauge_1h", "mm", -99, -999, 0, "GAUGE_1H", "mm", "Gauge Precipitation 1-hour Accumulation"},
		{"gauge_6h", "mm", -99, -999, 0, "GAUGE_6H", "mm", "Gauge Precipitation 6-hour Accumulation"},
		{"gauge_24h", "mm", -99, -999, 0, "GAUGE_24H", "mm", "Gauge Precipitation 24-hour Accumulation"},
		{"mmapper_1h", "mm", -99, -999, 0, "MNTMAPPER_1H", "mm", "Mountian Mapper Precipitation 1-hour Accumulation"},
		{"mmapper_6h", "mm", -99, -999, 0, "MNTMAPPER_6H", "mm", "Mountian Mapper Precipitation 6-hour Accumulation"},
		{"mmapper_24h", "mm", -99, -999, 0, "MNTMAPPER_24H", "mm", "Mountian Mapper Precipitation 24-hour Accumulation"},
		{"ms_1h", "mm", 0, -999, 0, "MS_1H", "mm", "MultiSensor Precipitation 1-hour Accumulation"},
		{"ms_3h", "mm", 0, -999, 0, "MS_3H", "mm", "MultiSensor Precipitation 3-hour Accumulation"},
		{"ms_6h", "mm", 0, -999, 0, "MS_6H", "mm", "MultiSensor Precipitation 6-hour Accumulation"},
		{"ms_12h", "mm", 0, -999, 0, "MS_12H", "mm", "MultiSensor Precipitation 12-hour Accumulation"},
		{"ms_24h", "mm", 0, -999, 0, "MS_24H", "mm", "MultiSensor Precipitation 24-hour Accumulation"},
		{"ms_48h", "mm", 0, -999, 0, "MS_48H", "mm", "MultiSensor Precipitation 48-hour Accumulation"},
		{"ms_72h", "mm", 0, -999, 0, "MS_72H", "mm", "MultiSensor Precipitation 72-hour Accumulation"},

		// Gauge-corrected QPE
		{"QCMASK.CREF", "flag", u, -999, 0, "CREF_QCMASK", "none", "Quality Control Mask based on composite reflectivity (values=0,1)"},
		{"FIELDMAX.CREF", "dBZ", -99, -999, 0, "FIELDMAX_CREF", "dBZ", "Maximum composite reflectivity value over the last 1-hour"},

		// NextGen
		{"AZ_SHEAR_2KM", "1/sec", -1, -2, 0, "AZ_SHEAR_2KM", "1/sec", "Azimuth Shear 0-2km AGL"},
		{"AZ_SHEAR_2KM_MAX", "1/sec", -1, -2, 0, "AZ_SHEAR_2KM_MAX", "1/sec", "Azimuth Shear 0-2km AGL 30-minute Max"},
		{"AZ_SHEAR_6KM", "1/sec", -1, -2, 0, "AZ_SHEAR_6KM", "1/sec", "Azimuth Shear 3-6km AGL"},
		{"AZ_SHEAR_6KM_MAX", "1/sec", -1, -2, 0, "AZ_SHEAR_6KM_MAX", "1/sec", "Azimuth Shear 3-6km AGL 30-minute Max"},
		{"HAILSWATH", "mm", -99, -999, 0, "HAILSWATH", "mm", "MESH 30-min Max Swath (HailSwath)"},
		{"CREF_30MIN_FCST", "dBZ", -99, -999, 1800, "CREF_30MIN_FCST", "dBZ", "30-min Forecast Composite Reflectivity Mosaic 0-60kft"},
		{"VIL_30MIN_FCST", "kg/m^", -99, -999, 1800, "VIL_30MIN_FCST", "kg/m2", "30-min Forecast VIL"},
		{"LTG_DENSITY", "1/(mi", -1, -2, 0, "LTG_DENSITY", "1/(minkm2)", "Lightning Density"},
		{"LTG_30MIN_PROB", "dimen", -1, -2, 1800, "LTG_30MIN_PROB", "percent", "Lightning Probability 0-30min"},

		// Legacy NMQ
		{"1h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_1H", "mm", "Mountian Mapper Precipitation 1-hour Accumulation"},
		{"3h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_3H", "mm", "Mountian Mapper Precipitation 3-hour Accumulation"},
		{"6h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_6H", "mm", "Mountian Mapper Precipitation 6-hour Accumulation"},
		{"12h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_12H", "mm", "Mountian Mapper Precipitation 12-hour Accumulation"},
		{"24h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_24H", "mm", "Mountian Mapper Precipitation 24-hour Accumulation"},
		{"48h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_48H", "mm", "Mountian Mapper Precipitation 48-hour Accumulation"},
		{"72h_mmapper", "mm", -99, -999, 0, "MNTMAPPER_72H", "mm", "Mountian Mapper Precipitation 72-hour Accumulation"},
		{"total_precip", "mm", -99, -999, 0, "STAGE4_1H", "mm", "Stage IV 1-hour Accumulation"},
	}
}
