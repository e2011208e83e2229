package configs

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "APP_PORT", "APP_URL", "STORE_TIMEOUT", "READ_RETRIES"} {
		t.Setenv(key, "")
	}
	env := LoadEnv()
	if env.DBDriver != "mysql" || env.Port != ":8080" || env.AppURL != "https://loja-joias.com" {
		t.Fatalf("defaults = %+v", env)
	}
	if env.StoreTimeout != 5*time.Second || env.ReadRetries != 2 {
		t.Fatalf("timeout/retries = %v/%d", env.StoreTimeout, env.ReadRetries)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("READ_RETRIES", "0")
	env := LoadEnv()
	if env.DBDriver != "postgres" || env.StoreTimeout != 750*time.Millisecond || env.ReadRetries != 0 {
		t.Fatalf("overrides = %+v", env)
	}

	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("READ_RETRIES", "-3")
	env = LoadEnv()
	if env.StoreTimeout != 5*time.Second || env.ReadRetries != 2 {
		t.Fatalf("invalid values should fall back, got %v/%d", env.StoreTimeout, env.ReadRetries)
	}
}

func TestDialector(t *testing.T) {
	env := ENV{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "joias"}

	for _, driver := range []string{"mysql", "postgres"} {
		env.DBDriver = driver
		d, err := Dialector(env)
		if err != nil {
			t.Fatalf("%s: %v", driver, err)
		}
		if d.Name() != driver {
			t.Fatalf("dialector name = %q, want %q", d.Name(), driver)
		}
	}

	env.DBDriver = "oracle"
	if _, err := Dialector(env); err == nil || !strings.Contains(err.Error(), "oracle") {
		t.Fatalf("want unsupported driver error, got %v", err)
	}
}

func TestLoadSessionKeys(t *testing.T) {
	auth := base64.URLEncoding.EncodeToString(make([]byte, 64))
	enc := base64.URLEncoding.EncodeToString(make([]byte, 32))

	keys, err := LoadSessionKeys(ENV{AppAuthKey: auth, AppEncKey: enc})
	if err != nil {
		t.Fatal(err)
	}
	if len(keys.AuthKey) != 64 || len(keys.EncKey) != 32 {
		t.Fatalf("key lengths = %d/%d", len(keys.AuthKey), len(keys.EncKey))
	}

	if _, err := LoadSessionKeys(ENV{AppAuthKey: auth}); err == nil {
		t.Fatal("missing APP_ENC_KEY should fail")
	}
	short := base64.URLEncoding.EncodeToString(make([]byte, 10))
	if _, err := LoadSessionKeys(ENV{AppAuthKey: auth, AppEncKey: short}); err == nil {
		t.Fatal("10 byte encryption key should fail")
	}

	fallback := SessionKeysOrEphemeral(ENV{})
	if len(fallback.AuthKey) != 64 || len(fallback.EncKey) != 32 {
		t.Fatalf("ephemeral key lengths = %d/%d", len(fallback.AuthKey), len(fallback.EncKey))
	}
}
