package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Проверяем приведение названий штатов к единому виду
func TestStandardizeState(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"maharashtra", "maharashtra"},
		{"Maharashtra", "maharashtra"},
		{"  karnataka  ", "karnataka"},
		{"andaman-&-nicobar-islands", "andaman & nicobar islands"},
		{"orissa", "odisha"},
		{"andaman and nicobar", "andaman & nicobar islands"},
		{"nct of delhi", "delhi"},
		{"dadra and nagar haveli and daman and diu", "dadra & nagar haveli & daman & diu"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StandardizeState(c.raw), "исходное значение: %q", c.raw)
	}
}

// Проверяем нормализацию названий районов
func TestNormalizeDistrict(t *testing.T) {
	assert.Equal(t, "pune", NormalizeDistrict("Pune District"))
	assert.Equal(t, "bengaluru urban", NormalizeDistrict("Bengaluru Urban district"))
	assert.Equal(t, "nicobars", NormalizeDistrict("  Nicobars  "))
}
