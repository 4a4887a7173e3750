// Package packet implements the 90-byte command/response frame used by the
// Razer USB HID feature-report protocol: construction, CRC, serialization,
// and request/response correlation.
package packet

import (
	"math/rand"

	"github.com/stvnksslr/razer-ctl/razererr"
)

// Size is the exact wire size of a Packet, in bytes.
const Size = 90

// maxArgs is the largest argument payload a Packet can carry.
const maxArgs = 80

// status byte values, per the openrazer protocol.
const (
	statusNew          uint8 = 0x00
	statusBusy         uint8 = 0x01
	statusSuccessful   uint8 = 0x02
	statusFailure      uint8 = 0x03
	statusTimeout      uint8 = 0x04
	statusNotSupported uint8 = 0x05
)

// Packet is the 90-byte command/response frame described in SPEC_FULL.md §3.
type Packet struct {
	Status           uint8
	ID               uint8
	RemainingPackets uint16
	ProtocolType     uint8
	DataSize         uint8
	CommandClass     uint8
	CommandID        uint8
	args             [maxArgs]byte
	CRC              uint8
	Reserved         uint8
}

// quirkyCommands lists the (class, id) pairs whose response is permitted to
// carry a different RemainingPackets than the request.
var quirkyCommands = map[[2]uint8]bool{
	{0x07, 0x92}: true, // battery-care read
	{0x07, 0x8f}: true, // max-fan-speed read
}

// New builds a command packet for the given 16-bit command code and
// argument bytes. args must be no longer than 80 bytes.
func New(command uint16, args []byte) (*Packet, error) {
	if len(args) > maxArgs {
		return nil, razererr.BadSize(maxArgs, len(args))
	}

	p := &Packet{
		Status:       statusNew,
		ID:           uint8(rand.Intn(256)),
		CommandClass: uint8(command >> 8),
		CommandID:    uint8(command & 0xff),
		DataSize:     uint8(len(args)),
	}
	copy(p.args[:], args)
	p.CRC = p.calculateCRC()
	return p, nil
}

// calculateCRC XORs bytes 2..88 of the serialized frame: the two bytes of
// RemainingPackets, ProtocolType, DataSize, CommandClass, CommandID, and all
// 80 argument bytes.
func (p *Packet) calculateCRC() uint8 {
	var crc uint8
	crc ^= uint8(p.RemainingPackets & 0xff)
	crc ^= uint8(p.RemainingPackets >> 8)
	crc ^= p.ProtocolType
	crc ^= p.DataSize
	crc ^= p.CommandClass
	crc ^= p.CommandID
	for _, b := range p.args {
		crc ^= b
	}
	return crc
}

// Args returns the first DataSize bytes of the argument buffer.
func (p *Packet) Args() []byte {
	return p.args[:p.DataSize]
}

// Serialize writes the packet to its exact 90-byte wire representation.
func (p *Packet) Serialize() [Size]byte {
	var buf [Size]byte
	buf[0] = p.Status
	buf[1] = p.ID
	buf[2] = uint8(p.RemainingPackets & 0xff)
	buf[3] = uint8(p.RemainingPackets >> 8)
	buf[4] = p.ProtocolType
	buf[5] = p.DataSize
	buf[6] = p.CommandClass
	buf[7] = p.CommandID
	copy(buf[8:88], p.args[:])
	buf[88] = p.CRC
	buf[89] = p.Reserved
	return buf
}

// Deserialize parses a 90-byte wire frame into a Packet.
func Deserialize(data []byte) (*Packet, error) {
	if len(data) != Size {
		return nil, razererr.BadSize(Size, len(data))
	}

	p := &Packet{
		Status:           data[0],
		ID:               data[1],
		RemainingPackets: uint16(data[2]) | uint16(data[3])<<8,
		ProtocolType:     data[4],
		DataSize:         data[5],
		CommandClass:     data[6],
		CommandID:        data[7],
		CRC:              data[88],
		Reserved:         data[89],
	}
	copy(p.args[:], data[8:88])
	return p, nil
}

// EnsureMatches validates that p is a legitimate response to request: same
// (command class, command id, id), same RemainingPackets (except for the
// two whitelisted quirky commands), and a Successful status.
func (p *Packet) EnsureMatches(request *Packet) (*Packet, error) {
	if p.CommandClass != request.CommandClass || p.CommandID != request.CommandID || p.ID != request.ID {
		return nil, razererr.New(razererr.ResponseMismatch)
	}

	if p.RemainingPackets != request.RemainingPackets {
		key := [2]uint8{request.CommandClass, request.CommandID}
		if !quirkyCommands[key] {
			return nil, razererr.New(razererr.ResponseMismatch)
		}
	}

	switch p.Status {
	case statusSuccessful:
		return p, nil
	case statusNotSupported:
		return nil, razererr.New(razererr.CommandNotSupported)
	case statusBusy:
		return nil, razererr.New(razererr.DeviceBusy)
	case statusFailure:
		return nil, razererr.New(razererr.CommandFailed)
	case statusTimeout:
		return nil, razererr.New(razererr.CommandTimeout)
	default:
		return nil, razererr.UnknownStatusByte(p.Status)
	}
}
