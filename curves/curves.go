// Package curves holds the fixed brightness tables swept by the ramp mode.
// Tables are static content; position order is the sweep order.
package curves

// Table is an ordered, read-only sequence of 8-bit intensities.
type Table []uint8

// Sinusoid rises and falls once; steps are coarse at the low end.
var Sinusoid = Table{
	4, 4, 5, 6, 8, 10, 13, 16, 20, 24, 28, 33, 39, 44, 50, 57,
	63, 70, 77, 85, 92, 100, 108, 116, 124, 131, 139, 147, 155, 163, 171, 178,
	185, 192, 199, 206, 212, 218, 223, 228, 233, 237, 241, 244, 247, 250, 252, 253,
	254, 255, 255, 254, 253, 252, 250, 247, 244, 241, 237, 233, 228, 223, 218, 212,
	206, 199, 192, 185, 178, 171, 163, 155, 147, 139, 131, 124, 116, 108, 100, 92,
	85, 77, 70, 63, 57, 50, 44, 39, 33, 28, 24, 20, 16, 13, 10, 8,
	6, 5, 4, 4,
}

// LnSinusoid is the natural log of a sinusoid; it lingers at the lowest levels.
var LnSinusoid = Table{
	5, 5, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 7, 7,
	8, 8, 9, 10, 11, 12, 14, 16, 18, 21, 24, 27, 32, 37, 43, 50,
	58, 67, 77, 88, 101, 114, 128, 143, 158, 174, 189, 203, 216, 228, 239, 246,
	252, 255, 255, 252, 246, 239, 228, 216, 203, 189, 174, 158, 143, 128, 114, 101,
	88, 77, 67, 58, 50, 43, 37, 32, 27, 24, 21, 18, 16, 14, 12, 11,
	10, 9, 8, 8, 7, 7, 6, 6, 6, 6, 6, 5, 5, 5, 5, 5,
	5, 5, 5, 5,
}

// Sqrt rises along a square-root curve.
var Sqrt = Table{
	4, 29, 39, 47, 54, 60, 65, 70, 75, 79, 83, 87, 91, 94, 98, 101,
	104, 107, 110, 113, 116, 119, 122, 124, 127, 130, 132, 134, 137, 139, 141, 144,
	146, 148, 150, 152, 155, 157, 159, 161, 163, 165, 167, 169, 170, 172, 174, 176,
	178, 180, 181, 183, 185, 187, 188, 190, 192, 194, 195, 197, 198, 200, 202, 203,
	205, 206, 208, 209, 211, 212, 214, 215, 217, 218, 220, 221, 223, 224, 226, 227,
	229, 230, 231, 233, 234, 235, 237, 238, 239, 241, 242, 243, 245, 246, 247, 249,
	250, 251, 252, 254, 255,
}

// Squared rises with roughly linear perceived intensity.
var Squared = Table{
	4, 4, 4, 5, 6, 7, 8, 9, 10, 12, 14, 16, 18, 21, 24, 27,
	30, 33, 37, 40, 44, 48, 53, 57, 62, 67, 72, 77, 83, 88, 94, 100,
	107, 113, 120, 127, 134, 141, 149, 157, 165, 173, 181, 190, 198, 207, 216, 226,
	235, 245, 255,
}

// SinSquared rises and falls along sin².
var SinSquared = Table{
	4, 4, 4, 4, 4, 4, 4, 5, 5, 6, 6, 7, 9, 10, 13, 15,
	18, 21, 25, 30, 35, 41, 47, 54, 61, 69, 77, 86, 95, 105, 115, 125,
	135, 145, 156, 166, 176, 186, 195, 204, 213, 221, 228, 235, 240, 245, 249, 252,
	254, 255, 255, 254, 252, 249, 245, 240, 235, 228, 221, 213, 204, 195, 186, 176,
	166, 156, 145, 135, 125, 115, 105, 95, 86, 77, 69, 61, 54, 47, 41, 35,
	30, 25, 21, 18, 15, 13, 10, 9, 7, 6, 6, 5, 5, 4, 4, 4,
	4, 4, 4, 4,
}

// SinSquaredHalf is the rising half period of sin². It is the default ramp curve.
var SinSquaredHalf = Table{
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5,
	5, 5, 6, 6, 6, 7, 7, 8, 9, 10, 10, 11, 13, 14, 15, 16,
	18, 20, 21, 23, 25, 28, 30, 32, 35, 38, 41, 44, 47, 50, 54, 57,
	61, 65, 69, 73, 77, 81, 86, 90, 95, 100, 105, 110, 115, 120, 125, 130,
	135, 140, 145, 150, 156, 161, 166, 171, 176, 181, 186, 190, 195, 200, 204, 209,
	213, 217, 221, 224, 228, 231, 234, 237, 240, 243, 245, 247, 249, 250, 252, 253,
	254, 254, 255, 255,
}

// Default is the table used when a profile names none.
const Default = "sin_squared_half"

var byName = map[string]Table{
	"sinusoid":         Sinusoid,
	"ln_sinusoid":      LnSinusoid,
	"sqrt":             Sqrt,
	"squared":          Squared,
	"sin_squared":      SinSquared,
	"sin_squared_half": SinSquaredHalf,
}

// Lookup returns the named table. An empty name selects Default.
func Lookup(name string) (Table, bool) {
	if name == "" {
		name = Default
	}
	t, ok := byName[name]
	return t, ok
}

// Names lists the known table names in no particular order.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	return out
}
