// Package domain models the conversion of MRMS Cartesian binary products
// into CF-style grids.
//
// # Data Source
//
// MRMS (Multi-Radar Multi-Sensor) mosaics are published as flat binary
// files, optionally gzip-compressed, one product and valid time per file.
// An upstream watcher announces each new file on the Kafka source topic as a
// FileNotice. The binary layout itself is handled by package mrms.
//
// # Product Matching
//
// Header labels are normalized (see [product.Normalize]) and looked up in the
// product table. A header with no unit matches any entry with the same name.
// Files whose name/unit pair is not in the table are rejected.
//
// # Time Coordinate
//
//	Analyses:             units "seconds since 1970-1-1 0:0:0", value = epoch seconds
//	2D forecast products: units "seconds since <valid time>",   value = forecast length
//
// The valid time comes from the header and is computed with the MRMS
// calendar rule, which treats every year divisible by four as a leap year.
//
// # Output Layout
//
//	<dir>/<cf_name>/<YYYYMMDD-HHMMSS>.grid[.gz]
//	<dir>/<cf_name>/<height km>/<YYYYMMDD-HHMMSS>.grid[.gz]
//
// The second form is used for single-level slices of the 3D mosaics (MREFL,
// MKDP, MRHOHV, MSPW, MZDR), with the height written as "00.50", "12.00".
//
// # Sentinels
//
// Missing cells keep the header's missing value. Range-folded cells are
// written as missing-1.
//
// # ID Generation
//
// Grid IDs are SHA-1 (version 5) UUIDs of cf_name|valid_time|height0|nz, so
// replays of the same file upsert the same catalog row. See [GridID].
package domain
