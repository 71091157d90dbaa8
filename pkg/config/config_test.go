package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt(t *testing.T) {
	v := viper.New()
	v.Set("RATE_LIMIT_MAX", "120")
	v.Set("HTTP_PORT", 9090)
	v.Set("AUTH_RATE_LIMIT_MAX", "abc")
	v.Set("DB_TX_TIMEOUT_MS", " 2500 ")

	assert.Equal(t, 120, getInt(v, "RATE_LIMIT_MAX", 300), "string numérico se parsea")
	assert.Equal(t, 9090, getInt(v, "HTTP_PORT", 8080), "int nativo se respeta")
	assert.Equal(t, 10, getInt(v, "AUTH_RATE_LIMIT_MAX", 10),
		"valor malformado cae al default, no a cero")
	assert.Equal(t, 2500, getInt(v, "DB_TX_TIMEOUT_MS", 5000), "espacios alrededor se toleran")
	assert.Equal(t, 60, getInt(v, "NO_DEFINIDA", 60), "clave ausente usa el default")
}

func TestGetString(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	assert.Equal(t, "production", getString(v, "APP_ENV", "development"))
	assert.Equal(t, "development", getString(v, "NO_DEFINIDA", "development"))
}
