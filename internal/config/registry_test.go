package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "pktfmt") {
		t.Errorf("GetConfigDir() = %v, should contain 'pktfmt'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Protocols == nil {
		t.Error("NewRegistry().Protocols should not be nil")
	}

	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}
}

func TestRegistryProtocolLookup(t *testing.T) {
	reg := NewRegistry()
	reg.SetProtocol("WoL", &Protocol{
		Description: "Wake-on-LAN Magic Packet",
		Definition:  "Sync:48,Target MAC:48,Password:*",
	})

	// Lookup is case-insensitive regardless of how the protocol was stored.
	for _, name := range []string{"wol", "WOL", "WoL"} {
		p, ok := reg.Protocol(name)
		if !ok {
			t.Fatalf("Protocol(%q) not found", name)
		}
		if p.Definition == "" {
			t.Errorf("Protocol(%q) has empty definition", name)
		}
	}

	if _, ok := reg.Protocol("missing"); ok {
		t.Error("Protocol() should report missing protocols")
	}
}

func TestRegistryRemoveProtocol(t *testing.T) {
	reg := NewRegistry()
	reg.SetProtocol("wol", &Protocol{Definition: "Sync:48,Password:*"})

	if !reg.RemoveProtocol("WOL") {
		t.Error("RemoveProtocol() should report true for existing protocol")
	}
	if reg.RemoveProtocol("wol") {
		t.Error("RemoveProtocol() should report false for missing protocol")
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.Preferences.Style = "unicode"
	reg.Preferences.BitsPerRow = 16
	reg.Preferences.HideRuler = true
	reg.SetProtocol("wol", &Protocol{
		Description: "Wake-on-LAN Magic Packet",
		Definition:  "Sync:48,Target MAC:48,Password:*",
	})

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if loaded.Version != 1 {
		t.Errorf("round-tripped Version = %d, want 1", loaded.Version)
	}
	if loaded.Preferences == nil || loaded.Preferences.Style != "unicode" {
		t.Errorf("round-tripped Preferences = %+v, want style unicode", loaded.Preferences)
	}
	if loaded.Preferences.BitsPerRow != 16 || !loaded.Preferences.HideRuler {
		t.Errorf("round-tripped Preferences = %+v, want bits 16, ruler hidden", loaded.Preferences)
	}

	p, ok := loaded.Protocol("wol")
	if !ok {
		t.Fatal("round-tripped registry missing protocol 'wol'")
	}
	if p.Definition != "Sync:48,Target MAC:48,Password:*" {
		t.Errorf("round-tripped definition = %q", p.Definition)
	}
}
