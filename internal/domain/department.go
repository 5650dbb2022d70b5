package domain

// DepartmentAll is the filter sentinel meaning "no department restriction".
const DepartmentAll = "Todos"

// departments is the closed set of Mendoza administrative regions used for
// locality filtering.
var departments = []string{
	"Capital", "General Alvear", "Godoy Cruz", "Guaymallén", "Junín",
	"La Paz", "Las Heras", "Lavalle", "Luján de Cuyo", "Maipú",
	"Malargüe", "Rivadavia", "San Carlos", "San Martín", "San Rafael",
	"Santa Rosa", "Tunuyán", "Tupungato",
}

// Departments returns the administrative regions a listing may be stored under.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// ValidDepartment reports whether s names a known administrative region.
// The ALL sentinel is not a valid stored value.
func ValidDepartment(s string) bool {
	for _, d := range departments {
		if s == d {
			return true
		}
	}
	return false
}
