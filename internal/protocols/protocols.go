// Package protocols holds the built-in packet format definitions that can be
// rendered by name, covering common link, network, transport, and
// application layer headers. Definitions use the inline field syntax parsed
// by the fields package.
package protocols

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Protocol is one built-in packet format.
type Protocol struct {
	Name        string
	Description string
	// Definition is the inline "Name:bits,..." field list for the header.
	Definition string
}

// ErrUnknownProtocol is wrapped by Lookup failures.
var ErrUnknownProtocol = errors.New("unknown protocol")

var builtins = map[string]Protocol{
	// Layer 2
	"ethernet": {
		Description: "Ethernet II Frame",
		Definition:  "Destination MAC:48,Source MAC:48,EtherType:16,Payload:*",
	},
	"8021q": {
		Description: "IEEE 802.1Q VLAN Tag",
		Definition:  "Destination MAC:48,Source MAC:48,TPID:16,PCP:3,DEI:1,VLAN ID:12,EtherType:16,Payload:*",
	},
	"arp": {
		Description: "Address Resolution Protocol",
		Definition:  "Hardware Type:16,Protocol Type:16,HW Addr Len:8,Proto Addr Len:8,Operation:16,Sender HW Addr:48,Sender Proto Addr:32,Target HW Addr:48,Target Proto Addr:32",
	},

	// Layer 3
	"ipv4": {
		Description: "Internet Protocol version 4",
		Definition:  "Version:4,IHL:4,DSCP:6,ECN:2,Total Length:16,Identification:16,Flags:3,Fragment Offset:13,TTL:8,Protocol:8,Header Checksum:16,Source Address:32,Destination Address:32,Options:*",
	},
	"ip": {
		Description: "Internet Protocol version 4 (alias)",
		Definition:  "Version:4,IHL:4,DSCP:6,ECN:2,Total Length:16,Identification:16,Flags:3,Fragment Offset:13,TTL:8,Protocol:8,Header Checksum:16,Source Address:32,Destination Address:32,Options:*",
	},
	"ipv6": {
		Description: "Internet Protocol version 6",
		Definition:  "Version:4,Traffic Class:8,Flow Label:20,Payload Length:16,Next Header:8,Hop Limit:8,Source Address:128,Destination Address:128",
	},
	"icmp": {
		Description: "Internet Control Message Protocol",
		Definition:  "Type:8,Code:8,Checksum:16,Rest of Header:32,Data:*",
	},
	"icmpv6": {
		Description: "ICMPv6",
		Definition:  "Type:8,Code:8,Checksum:16,Message Body:*",
	},

	// Layer 4
	"tcp": {
		Description: "Transmission Control Protocol",
		Definition:  "Source Port:16,Destination Port:16,Sequence Number:32,Acknowledgment Number:32,Data Offset:4,Reserved:3,Flags:9,Window Size:16,Checksum:16,Urgent Pointer:16,Options:*",
	},
	"udp": {
		Description: "User Datagram Protocol",
		Definition:  "Source Port:16,Destination Port:16,Length:16,Checksum:16,Data:*",
	},
	"sctp": {
		Description: "Stream Control Transmission Protocol",
		Definition:  "Source Port:16,Destination Port:16,Verification Tag:32,Checksum:32,Chunks:*",
	},

	// Application layer
	"dns": {
		Description: "Domain Name System Header",
		Definition:  "Transaction ID:16,Flags:16,Questions:16,Answer RRs:16,Authority RRs:16,Additional RRs:16,Data:*",
	},
	"dhcp": {
		Description: "Dynamic Host Configuration Protocol",
		Definition:  "Op:8,HType:8,HLen:8,Hops:8,Transaction ID:32,Seconds:16,Flags:16,Client IP:32,Your IP:32,Server IP:32,Gateway IP:32,Client HW Addr:128,Server Name:512,Boot Filename:1024,Options:*",
	},

	// Tunneling
	"gre": {
		Description: "Generic Routing Encapsulation",
		Definition:  "C:1,R:1,K:1,S:1,s:1,Recur:3,A:1,Flags:4,Version:3,Protocol Type:16,Payload:*",
	},
	"vxlan": {
		Description: "Virtual Extensible LAN",
		Definition:  "Flags:8,Reserved:24,VNI:24,Reserved:8,Payload:*",
	},

	// Industrial / ICS
	"modbus": {
		Description: "Modbus TCP",
		Definition:  "Transaction ID:16,Protocol ID:16,Length:16,Unit ID:8,Function Code:8,Data:*",
	},
	"dnp3": {
		Description: "DNP3 Data Link Layer",
		Definition:  "Start:16,Length:8,Control:8,Destination:16,Source:16,CRC:16,Data:*",
	},

	// Other
	"ntp": {
		Description: "Network Time Protocol",
		Definition:  "LI:2,VN:3,Mode:3,Stratum:8,Poll:8,Precision:8,Root Delay:32,Root Dispersion:32,Reference ID:32,Reference Timestamp:64,Origin Timestamp:64,Receive Timestamp:64,Transmit Timestamp:64",
	},
	"tls": {
		Description: "TLS Record",
		Definition:  "Content Type:8,Version:16,Length:16,Payload:*",
	},
	"quic": {
		Description: "QUIC Long Header",
		Definition:  "Header Form:1,Fixed Bit:1,Long Packet Type:2,Reserved:2,Packet Number Length:2,Version:32,DCID Len:8,DCID:*",
	},
}

// Lookup returns the builtin protocol with the given name,
// case-insensitively.
func Lookup(name string) (Protocol, error) {
	key := strings.ToLower(name)
	p, ok := builtins[key]
	if !ok {
		return Protocol{}, fmt.Errorf("%w: %q (use 'pktfmt list' to see available protocols)", ErrUnknownProtocol, name)
	}
	p.Name = key
	return p, nil
}

// Exists reports whether name is a builtin protocol.
func Exists(name string) bool {
	_, ok := builtins[strings.ToLower(name)]
	return ok
}

// All returns every builtin protocol, sorted by name.
func All() []Protocol {
	all := make([]Protocol, 0, len(builtins))
	for name, p := range builtins {
		p.Name = name
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Group is a display grouping of protocols by network layer.
type Group struct {
	Title string
	Names []string
}

// Groups returns the display grouping used by the list command. Protocols
// not named by any group are shown under "Other".
func Groups() []Group {
	return []Group{
		{Title: "Layer 2 (Data Link)", Names: []string{"ethernet", "8021q", "arp"}},
		{Title: "Layer 3 (Network)", Names: []string{"ipv4", "ip", "ipv6", "icmp", "icmpv6"}},
		{Title: "Layer 4 (Transport)", Names: []string{"tcp", "udp", "sctp"}},
		{Title: "Application", Names: []string{"dns", "dhcp", "ntp", "tls"}},
		{Title: "Tunneling", Names: []string{"gre", "vxlan", "quic"}},
		{Title: "Industrial/ICS", Names: []string{"modbus", "dnp3"}},
	}
}
