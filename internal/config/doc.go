// Package config provides user configuration management for pktfmt.
//
// This package manages a YAML-based configuration file that stores
// user-defined protocol definitions and default rendering preferences.
// The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/pktfmt/config.yaml or $HOME/.config/pktfmt/config.yaml
//   - macOS: $HOME/.config/pktfmt/config.yaml
//   - Windows: %LOCALAPPDATA%\pktfmt\config.yaml
//
// # File Format
//
//	version: 1
//	preferences:
//	  style: unicode
//	  bits_per_row: 32
//	protocols:
//	  wol:
//	    description: Wake-on-LAN Magic Packet
//	    definition: "Sync:48,Target MAC:48,Password:*"
//
// User protocols shadow builtins of the same name and show up in the list
// command and the interactive browser alongside the builtins.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.SetProtocol("wol", &config.Protocol{
//	    Description: "Wake-on-LAN Magic Packet",
//	    Definition:  "Sync:48,Target MAC:48,Password:*",
//	})
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
