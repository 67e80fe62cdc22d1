// Package trajectory encodes recorded projectile runs.
//
// # File Format
//
//	Header (16 bytes, little endian):
//	  Magic       uint32  "RTCT"
//	  Version     uint8
//	  Compression uint8   None, LZ4 or Zstd
//	  Reserved    uint16
//	  Count       uint32  number of samples
//	  Checksum    uint32  CRC32-C of the uncompressed body
//	Body (compressed as one stream):
//	  Count × { Tick uint32, Position [4]float64, Velocity [4]float64 }
//
// Floats are stored as raw IEEE-754 bits, so NaN and Inf survive a round trip.
package trajectory
