package module

import (
	"errors"
	"net"

	"github.com/drake/segbar/style"
	"github.com/drake/segbar/text"
)

// ErrNoNetwork reports that no interface is up with an IPv4 address.
var ErrNoNetwork = errors.New("no active network interface")

// Iface is the subset of interface state the network module looks at.
type Iface struct {
	Name     string
	Up       bool
	Loopback bool
	Addrs    []net.Addr
}

// SystemInterfaces lists the host's interfaces via the net package.
func SystemInterfaces() ([]Iface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	result := make([]Iface, 0, len(ifaces))
	for _, ifc := range ifaces {
		addrs, err := ifc.Addrs()
		if err != nil {
			continue // Interface vanished between calls
		}
		result = append(result, Iface{
			Name:     ifc.Name,
			Up:       ifc.Flags&net.FlagUp != 0,
			Loopback: ifc.Flags&net.FlagLoopback != 0,
			Addrs:    addrs,
		})
	}
	return result, nil
}

// Network renders the first active interface and its IPv4 address,
// or a "down" marker when nothing is connected.
type Network struct {
	Interfaces func() ([]Iface, error)
	styles     style.Styles
}

// NewNetwork creates a network module backed by SystemInterfaces.
func NewNetwork(styles style.Styles) *Network {
	return &Network{
		Interfaces: SystemInterfaces,
		styles:     styles,
	}
}

// Render implements Module.
func (n *Network) Render(left, right text.Colored) (Result, error) {
	ifaces, err := n.Interfaces()
	if err != nil {
		return Result{}, err
	}

	name, ip, err := firstActive(ifaces)
	if errors.Is(err, ErrNoNetwork) {
		return Wrap(left, right, text.New("net down", n.styles.NetworkDown)), nil
	}

	return Wrap(left, right, text.New(name+" "+ip, n.styles.Network)), nil
}

// firstActive returns the first up, non-loopback interface with an IPv4 address.
func firstActive(ifaces []Iface) (string, string, error) {
	for _, ifc := range ifaces {
		if !ifc.Up || ifc.Loopback {
			continue
		}
		for _, addr := range ifc.Addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip4 := ip.To4(); ip4 != nil {
				return ifc.Name, ip4.String(), nil
			}
		}
	}
	return "", "", ErrNoNetwork
}
