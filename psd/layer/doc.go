// Package layer decodes the "extra data" field of a layer record: the
// length-delimited block that carries the layer's mask section, its blending
// ranges, its Pascal name, and the additional layer information blocks.
//
//	Size   Field
//	----   -----
//	4      extra data length
//	var    layer mask / adjustment layer data (see package mask)
//	4      blending ranges length
//	8      composite gray range (source black x2, white x2; dest black x2, white x2)
//	8*n    one range per channel
//	var    layer name: Pascal string, padded to a multiple of 4 bytes
//	rest   additional layer information (kept raw)
//
// Layer names are Mac Roman encoded and are returned as UTF-8.
package layer
