// Package wireless reports which network a wireless interface is
// associated with, using nl80211.
package wireless

import (
	"os"

	"codeberg.org/mutker/barstatus/internal/errors"
	"codeberg.org/mutker/barstatus/internal/logger"
	"codeberg.org/mutker/barstatus/internal/telemetry"
	"github.com/mdlayher/wifi"
)

type client interface {
	Interfaces() ([]*wifi.Interface, error)
	BSS(ifi *wifi.Interface) (*wifi.BSS, error)
	Close() error
}

// Provider queries one named interface.
type Provider struct {
	iface  string
	client client
}

// New opens the nl80211 socket. Failing to open it is fatal.
func New(iface string) (*Provider, error) {
	errFactory := errors.New()

	if iface == "" {
		return nil, errFactory.New(ErrNoInterface)
	}

	c, err := wifi.New()
	if err != nil {
		return nil, errFactory.Wrap(ErrInitFailed, err)
	}

	logger.Debug().Str("interface", iface).Msg("Wireless provider initialized")

	return &Provider{iface: iface, client: c}, nil
}

// Read returns the current association of the interface. A missing
// interface or an interface without a BSS is reported as not associated.
func (p *Provider) Read() telemetry.WirelessReading {
	errFactory := errors.New()

	ifis, err := p.client.Interfaces()
	if err != nil {
		return telemetry.WirelessReading{Err: errFactory.Wrap(ErrQueryFailed, err)}
	}

	for _, ifi := range ifis {
		if ifi == nil || ifi.Name != p.iface {
			continue
		}

		bss, err := p.client.BSS(ifi)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return telemetry.WirelessReading{Err: errFactory.Wrap(ErrQueryFailed, err)}
		}
		if bss != nil && bss.SSID != "" {
			return telemetry.WirelessReading{SSID: bss.SSID, Associated: true}
		}
	}

	return telemetry.WirelessReading{}
}

// Interface returns the name of the queried interface.
func (p *Provider) Interface() string {
	return p.iface
}

// Close releases the netlink socket.
func (p *Provider) Close() error {
	if err := p.client.Close(); err != nil {
		return errors.New().Wrap(ErrQueryFailed, err)
	}
	return nil
}
