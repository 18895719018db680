// Package tia: NTSC color lookup table.
// Values carried verbatim from the original NTSC palette (even-indexed
// entries 0x00-0xFE); odd indices and gaps default to black/zero value.
package tia

var ntscColorTable = [256]uint32{
	0x00: 0x000000FF,
	0x02: 0x1A1A1AFF,
	0x04: 0x393939FF,
	0x06: 0x5B5B5BFF,
	0x08: 0x7E7E7EFF,
	0x0a: 0xA2A2A2FF,
	0x0c: 0xC7C7C7FF,
	0x0e: 0xEDEDEDFF,
	0x10: 0x190200FF,
	0x12: 0x3A1F00FF,
	0x14: 0x5D4100FF,
	0x16: 0x826400FF,
	0x18: 0xA78800FF,
	0x1a: 0xCCAD00FF,
	0x1c: 0xF2D219FF,
	0x1e: 0xFEFA40FF,
	0x20: 0x370000FF,
	0x22: 0x5E0800FF,
	0x24: 0x832700FF,
	0x26: 0xA94900FF,
	0x28: 0xCF6C00FF,
	0x2a: 0xF58F17FF,
	0x2c: 0xFEB438FF,
	0x2e: 0xFEDF6FFF,
	0x30: 0x470000FF,
	0x32: 0x730000FF,
	0x34: 0x981300FF,
	0x36: 0xBE3216FF,
	0x38: 0xE45335FF,
	0x3a: 0xFE7657FF,
	0x3c: 0xFE9C81FF,
	0x3e: 0xFEC6BBFF,
	0x40: 0x440008FF,
	0x42: 0x6F001FFF,
	0x44: 0x960640FF,
	0x46: 0xBB2462FF,
	0x48: 0xE14585FF,
	0x4a: 0xFE67AAFF,
	0x4c: 0xFE8CD6FF,
	0x4e: 0xFEB7F6FF,
	0x50: 0x2D004AFF,
	0x52: 0x570067FF,
	0x54: 0x7D058CFF,
	0x56: 0xA122B1FF,
	0x58: 0xC743D7FF,
	0x5a: 0xED65FEFF,
	0x5c: 0xFE8AF6FF,
	0x5e: 0xFEB5F7FF,
	0x60: 0x0D0082FF,
	0x62: 0x3300A2FF,
	0x64: 0x550FC9FF,
	0x66: 0x782DF0FF,
	0x68: 0x9C4EFEFF,
	0x6a: 0xC372FEFF,
	0x6c: 0xEB98FEFF,
	0x6e: 0xFEC0F9FF,
	0x70: 0x000091FF,
	0x72: 0x0A05BDFF,
	0x74: 0x2822E4FF,
	0x76: 0x4842FEFF,
	0x78: 0x6B64FEFF,
	0x7a: 0x908AFEFF,
	0x7c: 0xB7B0FEFF,
	0x7e: 0xDFD8FEFF,
	0x80: 0x000072FF,
	0x82: 0x001CABFF,
	0x84: 0x033CD6FF,
	0x86: 0x205EFDFF,
	0x88: 0x4081FEFF,
	0x8a: 0x64A6FEFF,
	0x8c: 0x89CEFEFF,
	0x8e: 0xB0F6FEFF,
	0x90: 0x00103AFF,
	0x92: 0x00316EFF,
	0x94: 0x0055A2FF,
	0x96: 0x0579C8FF,
	0x98: 0x239DEEFF,
	0x9a: 0x44C2FEFF,
	0x9c: 0x68E9FEFF,
	0x9e: 0x8FFEFEFF,
	0xa0: 0x001F02FF,
	0xa2: 0x004326FF,
	0xa4: 0x006957FF,
	0xa6: 0x008D7AFF,
	0xa8: 0x1BB19EFF,
	0xaa: 0x3BD7C3FF,
	0xac: 0x5DFEE9FF,
	0xae: 0x86FEFEFF,
	0xb0: 0x002403FF,
	0xb2: 0x004A05FF,
	0xb4: 0x00700CFF,
	0xb6: 0x09952BFF,
	0xb8: 0x28BA4CFF,
	0xba: 0x49E06EFF,
	0xbc: 0x6CFE92FF,
	0xbe: 0x97FEB5FF,
	0xc0: 0x002102FF,
	0xc2: 0x004604FF,
	0xc4: 0x086B00FF,
	0xc6: 0x289000FF,
	0xc8: 0x49B509FF,
	0xca: 0x6BDB28FF,
	0xcc: 0x8FFE49FF,
	0xce: 0xBBFE69FF,
	0xd0: 0x001501FF,
	0xd2: 0x103600FF,
	0xd4: 0x305900FF,
	0xd6: 0x537E00FF,
	0xd8: 0x76A300FF,
	0xda: 0x9AC800FF,
	0xdc: 0xBFEE1EFF,
	0xde: 0xE8FE3EFF,
	0xe0: 0x1A0200FF,
	0xe2: 0x3B1F00FF,
	0xe4: 0x5E4100FF,
	0xe6: 0x836400FF,
	0xe8: 0xA88800FF,
	0xea: 0xCEAD00FF,
	0xec: 0xF4D218FF,
	0xee: 0xFEFA40FF,
	0xf0: 0x380000FF,
	0xf2: 0x5F0800FF,
	0xf4: 0x842700FF,
	0xf6: 0xAA4900FF,
	0xf8: 0xD06B00FF,
	0xfa: 0xF68F18FF,
	0xfc: 0xFEB439FF,
	0xfe: 0xFEDF70FF,
}
