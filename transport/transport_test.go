package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stvnksslr/razer-ctl/packet"
)

// fakeHidDevice is a scripted stand-in for *hid.Device used to exercise the
// framing and pacing behavior of hidTransport.Send without real hardware.
type fakeHidDevice struct {
	sent     []byte
	response []byte
	readErr  error
	readN    int
}

func (f *fakeHidDevice) SendFeatureReport(b []byte) (int, error) {
	f.sent = append([]byte(nil), b...)
	return len(b), nil
}

func (f *fakeHidDevice) GetFeatureReport(b []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	n := f.readN
	if n == 0 {
		n = len(f.response)
	}
	copy(b, f.response)
	return n, nil
}

func (f *fakeHidDevice) Close() error { return nil }

func TestSendFramesOutgoingReportWithLeadingZeroByte(t *testing.T) {
	request, err := packet.New(0x0792, []byte{0})
	require.NoError(t, err)

	echoResponse, err := packet.New(0x0792, []byte{0xd0})
	require.NoError(t, err)
	echoResponse.ID = request.ID
	echoResponse.Status = 0x02
	wire := echoResponse.Serialize()

	full := make([]byte, reportSize)
	copy(full[1:], wire[:])

	dev := &fakeHidDevice{response: full}
	tr := &hidTransport{device: dev}

	_, err = tr.Send(request)
	require.NoError(t, err)

	assert.Equal(t, reportSize, len(dev.sent))
	assert.Equal(t, uint8(0), dev.sent[0], "leading HID report-id byte must be 0")
}

func TestSendRejectsWrongReadSize(t *testing.T) {
	request, err := packet.New(0x0d02, []byte{0x01})
	require.NoError(t, err)

	dev := &fakeHidDevice{response: make([]byte, reportSize), readN: reportSize - 1}
	tr := &hidTransport{device: dev}

	_, err = tr.Send(request)
	require.Error(t, err)
}

func TestSendPropagatesResponseMismatch(t *testing.T) {
	request, err := packet.New(0x0d02, []byte{0x01})
	require.NoError(t, err)

	response, err := packet.New(0x0d82, []byte{0x01})
	require.NoError(t, err)
	response.Status = 0x02
	wire := response.Serialize()
	full := make([]byte, reportSize)
	copy(full[1:], wire[:])

	dev := &fakeHidDevice{response: full}
	tr := &hidTransport{device: dev}

	_, err = tr.Send(request)
	require.Error(t, err)
}
