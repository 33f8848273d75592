package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bill-automation-api/pkg/jwt"
)

func TestGenerateParse_ConservaSujeto(t *testing.T) {
	sub := jwt.Subject{UserID: "u-1", Username: "admin", CompanyID: "jmdSupplyChain", Role: "admin"}

	tok, err := jwt.Generate("secreto", sub, "bill-automation", 5)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "jmdSupplyChain", claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "bill-automation", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secreto", jwt.Subject{UserID: "u-1"}, "x", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate("secreto", jwt.Subject{UserID: "u-1"}, "x", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", jwt.Subject{UserID: "u-1"}, "x", 5)
	assert.Error(t, err)
}
