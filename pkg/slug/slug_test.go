package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-suite/pkg/slug"
)

func TestMake_TituloSimple(t *testing.T) {
	assert.Equal(t, "hello-world", slug.Make("Hello World"))
}

func TestMake_AcentosFranceses(t *testing.T) {
	assert.Equal(t, "strategie-commerciale-ete", slug.Make("Stratégie Commerciale Été"))
	assert.Equal(t, "francais-ca-marche", slug.Make("Français: ça marche!"))
}

func TestMake_CaracteresEspeciales(t *testing.T) {
	assert.Equal(t, "a-b-c", slug.Make("  a / b & c  "))
	assert.Equal(t, "", slug.Make("???"))
}

func TestEnsure_PrefiereSlugExplicito(t *testing.T) {
	assert.Equal(t, "custom", slug.Ensure("custom", "Ignored Title"))
	assert.Equal(t, "ignored-title", slug.Ensure("", "Ignored Title"))
}
