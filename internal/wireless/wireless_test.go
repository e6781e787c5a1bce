package wireless

import (
	stderrors "errors"
	"os"
	"testing"

	"codeberg.org/mutker/barstatus/internal/errors"
	"github.com/mdlayher/wifi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	ifis     []*wifi.Interface
	ifisErr  error
	bss      map[string]*wifi.BSS
	bssErr   map[string]error
	closeErr error
	closed   bool
}

func (c *fakeClient) Interfaces() ([]*wifi.Interface, error) {
	return c.ifis, c.ifisErr
}

func (c *fakeClient) BSS(ifi *wifi.Interface) (*wifi.BSS, error) {
	if err := c.bssErr[ifi.Name]; err != nil {
		return nil, err
	}
	return c.bss[ifi.Name], nil
}

func (c *fakeClient) Close() error {
	c.closed = true
	return c.closeErr
}

func newTestProvider(c *fakeClient) *Provider {
	return &Provider{iface: "wlp3s0", client: c}
}

func TestReadAssociated(t *testing.T) {
	p := newTestProvider(&fakeClient{
		ifis: []*wifi.Interface{{Name: "wlan1"}, {Name: "wlp3s0"}},
		bss: map[string]*wifi.BSS{
			"wlan1":  {SSID: "other"},
			"wlp3s0": {SSID: "home-net"},
		},
	})

	r := p.Read()
	require.NoError(t, r.Err)
	assert.True(t, r.Associated)
	assert.Equal(t, "home-net", r.SSID)
}

func TestReadNotAssociated(t *testing.T) {
	p := newTestProvider(&fakeClient{
		ifis:   []*wifi.Interface{{Name: "wlp3s0"}},
		bssErr: map[string]error{"wlp3s0": os.ErrNotExist},
	})

	r := p.Read()
	require.NoError(t, r.Err)
	assert.False(t, r.Associated)
}

func TestReadEmptySSID(t *testing.T) {
	p := newTestProvider(&fakeClient{
		ifis: []*wifi.Interface{{Name: "wlp3s0"}},
		bss:  map[string]*wifi.BSS{"wlp3s0": {}},
	})

	r := p.Read()
	require.NoError(t, r.Err)
	assert.False(t, r.Associated)
}

func TestReadMissingInterface(t *testing.T) {
	p := newTestProvider(&fakeClient{
		ifis: []*wifi.Interface{{Name: "wlan0"}},
		bss:  map[string]*wifi.BSS{"wlan0": {SSID: "x"}},
	})

	r := p.Read()
	require.NoError(t, r.Err)
	assert.False(t, r.Associated)
}

func TestReadQueryFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"interfaces", &fakeClient{ifisErr: stderrors.New("netlink: permission denied")}},
		{"bss", &fakeClient{
			ifis:   []*wifi.Interface{{Name: "wlp3s0"}},
			bssErr: map[string]error{"wlp3s0": stderrors.New("netlink: timeout")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestProvider(tt.client).Read()
			require.Error(t, r.Err)
			assert.True(t, errors.HasCode(r.Err, ErrQueryFailed))
		})
	}
}

func TestClose(t *testing.T) {
	c := &fakeClient{}
	require.NoError(t, newTestProvider(c).Close())
	assert.True(t, c.closed)

	c = &fakeClient{closeErr: stderrors.New("ebadf")}
	assert.Error(t, newTestProvider(c).Close())
}

func TestNewRequiresInterface(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrNoInterface))
}
