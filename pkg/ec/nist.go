package ec

import "math/big"

// NIST prime curves (FIPS 186-4, D.1.2). All have a = -3.
var (
	p192 = NewCurve("P-192",
		big.NewInt(-3),
		mustInt("2455155546008943817740293915197451784769108058161191238065"),
		mustInt("6277101735386680763835789423207666416083908700390324961279"),
		mustInt("602046282375688656758213480587526111916698976636884684818"),
		mustInt("174050332293622031404857552280219410364023488927386650641"),
		mustInt("6277101735386680763835789423176059013767194773182842284081"),
	)

	p224 = NewCurve("P-224",
		big.NewInt(-3),
		mustInt("18958286285566608000408668544493926415504680968679321075787234672564"),
		mustInt("26959946667150639794667015087019630673557916260026308143510066298881"),
		mustInt("19277929113566293071110308034699488026831934219452440156649784352033"),
		mustInt("19926808758034470970197974370888749184205991990603949537637343198772"),
		mustInt("26959946667150639794667015087019625940457807714424391721682722368061"),
	)

	p256 = NewCurve("P-256",
		big.NewInt(-3),
		mustInt("41058363725152142129326129780047268409114441015993725554835256314039467401291"),
		mustInt("115792089210356248762697446949407573530086143415290314195533631308867097853951"),
		mustInt("48439561293906451759052585252797914202762949526041747995844080717082404635286"),
		mustInt("36134250956749795798585127919587881956611106672985015071877198253568414405109"),
		mustInt("115792089210356248762697446949407573529996955224135760342422259061068512044369"),
	)
)

// P192 returns the NIST P-192 curve.
func P192() *Curve { return p192 }

// P224 returns the NIST P-224 curve.
func P224() *Curve { return p224 }

// P256 returns the NIST P-256 curve.
func P256() *Curve { return p256 }

// NISTCurves returns P-192, P-224 and P-256, in that order.
func NISTCurves() []*Curve {
	return []*Curve{p192, p224, p256}
}

// mustInt parses a decimal or 0x-prefixed hexadecimal constant.
func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("ec: bad integer constant " + s)
	}
	return n
}
