package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("abcd1234"))
	assert.True(t, ValidPassword("Xabcd-1234"))
	assert.False(t, ValidPassword("abc12345"))
	assert.False(t, ValidPassword("abcdefg123"))
	assert.False(t, ValidPassword("ABCD1234"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("mesero.uno@poskeeper.cr"))
	assert.False(t, ValidEmail("sin-arroba.cr"))
	assert.False(t, ValidEmail("a@b.toolong"))
}

func TestValidCedulaAndTelefono(t *testing.T) {
	assert.True(t, ValidCedula("1234567"))
	assert.True(t, ValidCedula("123456789"))
	assert.False(t, ValidCedula("123456"))
	assert.False(t, ValidCedula("12345678a"))

	assert.True(t, ValidTelefono("88887777"))
	assert.False(t, ValidTelefono("8888777"))
}

func TestNonNegativeInteger(t *testing.T) {
	assert.True(t, NonNegativeInteger(decimal.NewFromInt(0)))
	assert.True(t, NonNegativeInteger(decimal.NewFromInt(2500)))
	assert.False(t, NonNegativeInteger(decimal.NewFromFloat(10.5)))
	assert.False(t, NonNegativeInteger(decimal.NewFromInt(-1)))
}

func TestAllowedPhoto(t *testing.T) {
	assert.True(t, AllowedPhoto("plato.JPG"))
	assert.True(t, AllowedPhoto("plato.png"))
	assert.False(t, AllowedPhoto("plato.gif"))
	assert.False(t, AllowedPhoto("plato"))
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(7, "mesero1", "Mesero", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.IDUsuario)
	assert.Equal(t, "mesero1", claims.NombreUsuario)
	assert.Equal(t, "Mesero", claims.Rol)

	_, err = ParseToken(tok, "other")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	tok, err := GenerateToken(1, "admin", "Administrador", "s3cret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "s3cret")
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	h, err := HashPassword("abcd1234")
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(h, "abcd1234"))
	assert.Error(t, ComparePassword(h, "abcd12345"))
}
