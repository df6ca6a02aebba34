package entity

// Tipos de prueba.
const (
	TestElectrical  = "electrical"
	TestHydraulic   = "hydraulic"
	TestAerodynamic = "aerodynamic"
)

// Resultados de prueba.
const (
	TestApproved = "approved"
	TestFailed   = "failed"
)

// TestTypes tipos válidos de prueba.
func TestTypes() []string { return []string{TestElectrical, TestHydraulic, TestAerodynamic} }

// TestResults resultados válidos de prueba.
func TestResults() []string { return []string{TestApproved, TestFailed} }

// IsValidTestType indica si t es un tipo de prueba conocido.
func IsValidTestType(t string) bool {
	switch t {
	case TestElectrical, TestHydraulic, TestAerodynamic:
		return true
	}
	return false
}

// IsValidTestResult indica si r es un resultado conocido.
func IsValidTestResult(r string) bool { return r == TestApproved || r == TestFailed }

// Test prueba realizada sobre una aeronave.
type Test struct {
	Type   string
	Result string
}

// NewTest construye una prueba.
func NewTest(testType, result string) *Test {
	return &Test{Type: testType, Result: result}
}
