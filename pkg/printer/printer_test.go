package printer

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsPrinterType(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("x")))

	_, err = New(Options{Type: TypeUSB})
	assert.Error(t, err)

	_, err = New(Options{Type: TypeNetwork})
	assert.Error(t, err)

	_, err = New(Options{Type: "bluetooth"})
	assert.Error(t, err)
}

func TestUSBPrinterWritesDeviceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p, err := New(Options{Type: TypeUSB, USBPath: path})
	require.NoError(t, err)
	assert.True(t, p.IsConnected())
	require.NoError(t, p.Print([]byte("job")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "job", string(got))
}

func TestNetworkPrinterSendsJob(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 16)
		n, _ := conn.Read(buf)
		received <- buf[:n]
	}()

	p, err := New(Options{Type: TypeNetwork, Address: ln.Addr().String()})
	require.NoError(t, err)
	require.NoError(t, p.Print([]byte("job")))
	assert.Equal(t, "job", string(<-received))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Print([]byte("a")))
	require.NoError(t, r.Print([]byte("b")))
	assert.Len(t, r.Jobs(), 2)

	r.Err = errors.New("paper out")
	assert.Error(t, r.Print([]byte("c")))
	assert.False(t, r.IsConnected())
}
