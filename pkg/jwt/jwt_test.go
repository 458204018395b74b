package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestion-stock/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "gestion-stock-test"
)

var testIdentity = pkgjwt.Identity{
	UserID: "8d4c1b53-5d0e-4b43-9a6d-3c1f2f1a9e01",
	Email:  "ana@example.com",
	Name:   "Ana",
}

func TestGenerateAndParse_Identidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)
}

func TestParse_SinIssuerNoLoExige(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "otro-emisor", testIdentity, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, "", tok)
	assert.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "emisor distinto debe invalidar el token")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testIdentity, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_SinSubject(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, pkgjwt.Identity{Email: "x@example.com"}, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testIdentity, 60)
	assert.Error(t, err)
}
