package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPTYStringUsesVariantTable(t *testing.T) {
	rds := New(RDS)
	rds.PTY = 1
	rds.ValidFields |= FieldPTY
	name, ok := rds.PTYString()
	assert.True(t, ok)
	assert.Equal(t, "News", name)

	rbds := New(RBDS)
	rbds.PTY = 1
	rbds.ValidFields |= FieldPTY
	name, ok = rbds.PTYString()
	assert.True(t, ok)
	assert.Equal(t, "News", name) // RBDS index 1 also happens to read "News"
}

func TestPTYStringUnvalidatedReportsNotOK(t *testing.T) {
	d := New(RDS)
	_, ok := d.PTYString()
	assert.False(t, ok)
}

func TestCountryStringResolvesEuropeanECC(t *testing.T) {
	d := New(RDS)
	d.ECC = 0xe0
	d.ValidFields |= FieldECC
	d.PI = 0x1000 // country code nibble = 1 -> "DE" for ecc_l=0
	assert.Equal(t, "DE", d.CountryString())
}

func TestCountryStringUnknownOutsideEuropeanRange(t *testing.T) {
	d := New(RDS)
	d.ECC = 0xa0
	d.ValidFields |= FieldECC
	assert.Equal(t, "Unknown", d.CountryString())
}

func TestCoverageStringResolvesFromPI(t *testing.T) {
	d := New(RDS)
	d.PI = 0x0200 // bits 8-11 = 2 -> "National"
	assert.Equal(t, "National", d.CoverageString())
}

func TestLanguageStringResolvesFromLC(t *testing.T) {
	d := New(RDS)
	d.LC = 9 // "English"
	d.ValidFields |= FieldLC
	assert.Equal(t, "English", d.LanguageString())
}
