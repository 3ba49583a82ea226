package reaction

// Molar masses in g/mol.
const (
	SalicylicAcidMolarMass   = 138.12
	AceticAnhydrideMolarMass = 102.09
	AspirinMolarMass         = 180.16
	AceticAcidMolarMass      = 60.05
)

// MaxEfficiency is the upper bound (inclusive) for catalyst efficiency, in percent.
const MaxEfficiency = 100.0
