package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeOptionalString writes a presence bit so decoders know if data follows.
func (w *binWriter) writeOptionalString(ptr *string) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeString(*ptr)
}

// writeAmount stores uint256 values as decimal strings, matching the host
// ledger representation so balances and state never disagree on format.
func (w *binWriter) writeAmount(v *uint256.Int) {
	if v == nil {
		w.writeString("0")
		return
	}
	w.writeString(v.Dec())
}

// writeAddress canonicalizes the address before writing so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readOptionalString checks the presence byte, then returns pointer so callers know nil.
func (r *binReader) readOptionalString() (*string, error) {
	ok, err := r.readBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	str, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &str, nil
}

// readAmount rebuilds a uint256 from its decimal string form.
func (r *binReader) readAmount() (*uint256.Int, error) {
	s, err := r.readString()
	if err != nil {
		return nil, err
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.New("invalid amount: " + s)
	}
	return v, nil
}

// readAddress restores the address wrapper written by writeAddress.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.AddressZero, err
	}
	return AddressFromString(s), nil
}

// ------------------------------------------------------------------
// Record codecs
// ------------------------------------------------------------------

// EncodeEdition serializes the Edition record into deterministic bytes for storage.
// Example payload: EncodeEdition(&Edition{Name: "Genesis", Size: 1000})
func EncodeEdition(ed *Edition) []byte {
	w := newWriter()
	w.writeAddress(ed.Owner)
	w.writeString(ed.Name)
	w.writeString(ed.Symbol)
	w.writeString(ed.Description)
	w.writeString(ed.ContentURL)
	w.writeString(ed.ContentHash)
	w.writeString(ed.ContentType)
	w.writeUint64(ed.Size)
	w.writeUint64(ed.RoyaltyBps)
	w.writeOptionalString(ed.MetadataContract)
	return w.bytes()
}

// DecodeEdition is the inverse of EncodeEdition and keeps the same field order.
func DecodeEdition(data []byte) (*Edition, error) {
	r := newReader(data)
	ed := &Edition{}
	var err error
	if ed.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if ed.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.Symbol, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.ContentURL, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.ContentHash, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.ContentType, err = r.readString(); err != nil {
		return nil, err
	}
	if ed.Size, err = r.readUint64(); err != nil {
		return nil, err
	}
	if ed.RoyaltyBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if ed.MetadataContract, err = r.readOptionalString(); err != nil {
		return nil, err
	}
	return ed, nil
}

// EncodeShareTable packs the ordered shareholder rows; order matters because
// the owner remainder always sits last.
// Example payload: EncodeShareTable([]Shareholder{{Address: "hive:a", Bps: 100}})
func EncodeShareTable(shares []Shareholder) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(shares)))
	for _, sh := range shares {
		w.writeAddress(sh.Address)
		w.writeUint64(sh.Bps)
	}
	return w.bytes()
}

// DecodeShareTable restores the ordered rows written by EncodeShareTable.
func DecodeShareTable(data []byte) ([]Shareholder, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	shares := make([]Shareholder, 0, count)
	for i := uint64(0); i < count; i++ {
		var sh Shareholder
		if sh.Address, err = r.readAddress(); err != nil {
			return nil, err
		}
		if sh.Bps, err = r.readUint64(); err != nil {
			return nil, err
		}
		shares = append(shares, sh)
	}
	return shares, nil
}

// EncodeLedger stores the two lifetime totals of the revenue splitter.
// Example payload: EncodeLedger(&Ledger{TotalReceived: uint256.NewInt(5)})
func EncodeLedger(l *Ledger) []byte {
	w := newWriter()
	w.writeAmount(l.TotalReceived)
	w.writeAmount(l.TotalWithdrawn)
	return w.bytes()
}

// DecodeLedger restores the totals written by EncodeLedger.
func DecodeLedger(data []byte) (*Ledger, error) {
	r := newReader(data)
	l := &Ledger{}
	var err error
	if l.TotalReceived, err = r.readAmount(); err != nil {
		return nil, err
	}
	if l.TotalWithdrawn, err = r.readAmount(); err != nil {
		return nil, err
	}
	return l, nil
}
