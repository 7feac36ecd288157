// Package mrms decodes MRMS Cartesian binary products: the gzip-wrapped
// lat/lon grids written by the NSSL Multi-Radar/Multi-Sensor system.
//
// # Layout
//
// A file is a header of 32-bit integers and fixed-width character fields
// followed by the samples. Offsets after the heights depend on nz and the
// sample offset depends on nradars:
//
//	0    year month day hour minute second      6 x i32
//	24   nx ny nz                               3 x i32
//	36   projection                             4 bytes, ignored
//	40   map_scale                              i32
//	44   trulat1 trulat2 trulon                 3 x i32, ignored
//	56   nw_lon nw_lat                          2 x i32, / map_scale
//	64   xy_scale                               i32, ignored
//	68   dx dy                                  2 x i32, / dxy_scale
//	76   dxy_scale                              i32
//	80   height[nz]                             nz x i32, / height_scale
//	X    height_scale                           i32 (0 or 1: heights already unscaled)
//	X+4  reserved                               10 x i32
//	X+44 varname                                20 bytes, 19 usable
//	X+64 varunit                                6 bytes, 5 usable
//	X+70 var_scale missing_value nradars        3 x i32
//	X+82 radar[nradars]                         nradars x 4 bytes
//	...  samples                                nx*ny*nz x i16, / var_scale
//
// where X = 80 + 4*nz. The header is therefore 162 + 4*nz + 4*nradars bytes.
//
// # Byte order
//
// Fields are stored in the producer's native order. The swap flag reverses
// every interpreted multi-byte field after it is read. The deprecated
// projection words are consumed verbatim and never swapped.
//
// # Orientation
//
// Samples run level by level, each level from the southern row to the
// northern one. [Decode] returns grids flipped to north-first rows, the
// convention CF consumers expect.
//
// # Time
//
// The valid time is rebuilt with fixed calendar arithmetic in [EpochSeconds].
// Leap years are every fourth year with no century exception, which is exact
// for 1901 through 2099.
package mrms
