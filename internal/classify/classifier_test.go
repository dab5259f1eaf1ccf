package classify

import (
	"testing"

	"github.com/civicgrid/complaints-platform/internal/domain"
)

func TestClassifySingleDepartment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		description string
		want        domain.Department
	}{
		{name: "seguridad keyword", description: "hubo un robo en mi cuadra", want: domain.DepartmentSeguridad},
		{name: "delito keyword", description: "quiero denunciar un delito", want: domain.DepartmentSeguridad},
		{name: "obras keyword", description: "hay un bache enorme en la esquina", want: domain.DepartmentObras},
		{name: "accented keyword", description: "falta iluminación en la plaza", want: domain.DepartmentObras},
		{name: "ambiente keyword", description: "acumulación de basura en la vereda", want: domain.DepartmentAmbiente},
		{name: "ruido keyword", description: "el ruido del bar no me deja dormir", want: domain.DepartmentAmbiente},
		{name: "uppercase input", description: "ROBO A MANO ARMADA", want: domain.DepartmentSeguridad},
		{name: "keyword inside word", description: "inseguridad constante en el barrio", want: domain.DepartmentSeguridad},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.description); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.description, got, tc.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		description string
		want        domain.Department
	}{
		{name: "seguridad beats obras", description: "robo de luminarias y un bache", want: domain.DepartmentSeguridad},
		{name: "seguridad beats ambiente", description: "ruido y delito en la zona", want: domain.DepartmentSeguridad},
		{name: "obras beats ambiente", description: "bache lleno de basura", want: domain.DepartmentObras},
		{name: "all three departments", description: "robo, bache y basura en la misma calle", want: domain.DepartmentSeguridad},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.description); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.description, got, tc.want)
			}
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		description string
	}{
		{name: "no keyword", description: "el semáforo de la avenida está intermitente"},
		{name: "empty description", description: ""},
		{name: "whitespace only", description: "   "},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.description); got != domain.DepartmentOtro {
				t.Errorf("Classify(%q) = %q, want %q", tc.description, got, domain.DepartmentOtro)
			}
		})
	}
}
