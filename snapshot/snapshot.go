package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/colgo/cluster"
)

// Kind identifies the model family stored in a snapshot.
type Kind uint8

const (
	// KindKCenters marks a k-centers model (centroids plus membership).
	KindKCenters Kind = 1
	// KindAffinity marks an affinity propagation model (exemplars).
	KindAffinity Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindKCenters:
		return "kcenters"
	case KindAffinity:
		return "affinity"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Model is the codec-encoded snapshot payload. Members holds one
// serialized roaring bitmap per center, in center order; it is empty
// when membership was not materialized.
type Model struct {
	Kind      Kind      `json:"kind"`
	Centers   []float64 `json:"centers,omitempty"`
	Positions []uint32  `json:"positions,omitempty"`
	Members   [][]byte  `json:"members,omitempty"`
}

// FromKCenters captures a fitted k-centers visitor as a Model.
func FromKCenters(kc *cluster.KCenters) (*Model, error) {
	m := &Model{
		Kind:    KindKCenters,
		Centers: kc.Result(),
	}

	for _, c := range kc.Clusters() {
		data, err := c.Members.ToBytes()
		if err != nil {
			return nil, fmt.Errorf("serialize members: %w", err)
		}

		m.Members = append(m.Members, data)
	}

	return m, nil
}

// FromAffinity captures a fitted affinity propagation visitor as a Model.
func FromAffinity(ap *cluster.AffinityPropagation) *Model {
	return &Model{
		Kind:      KindAffinity,
		Centers:   ap.Result(),
		Positions: ap.Positions(),
	}
}

// Clusters rebuilds the materialized clusters from the model. It fails
// when the model carries no membership bitmaps.
func (m *Model) Clusters() ([]cluster.Cluster, error) {
	if len(m.Members) != len(m.Centers) {
		return nil, fmt.Errorf("snapshot: %d centers but %d membership bitmaps", len(m.Centers), len(m.Members))
	}

	clusters := make([]cluster.Cluster, 0, len(m.Centers))

	for i, data := range m.Members {
		bm := roaring.New()
		if err := bm.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("deserialize members: %w", err)
		}

		clusters = append(clusters, cluster.Cluster{Center: m.Centers[i], Members: bm})
	}

	return clusters, nil
}

type options struct {
	codec       Codec
	compression Compression
}

// Option configures Save.
type Option func(*options)

// WithCodec sets the payload codec. The codec's name is stored in the
// header; Load only accepts built-in codec names.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompression sets the payload compression algorithm.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Save writes the model to w in the snapshot format.
func Save(w io.Writer, m *Model, optFns ...Option) error {
	o := options{
		codec:       DefaultCodec,
		compression: CompressionZSTD,
	}

	for _, fn := range optFns {
		fn(&o)
	}

	name := o.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return fmt.Errorf("snapshot: invalid codec name %q", name)
	}

	payload, err := o.codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	compressed, err := compress(payload, o.compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	cw := newChecksumWriter(w)

	hdr := fileHeader{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  uint8(o.compression),
		CodecNameLen: uint8(len(name)),
	}
	if err := binary.Write(cw, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if _, err := cw.Write([]byte(name)); err != nil {
		return fmt.Errorf("write codec name: %w", err)
	}

	if err := binary.Write(cw, binary.LittleEndian, uint32(len(payload))); err != nil {
		return fmt.Errorf("write payload size: %w", err)
	}

	if err := binary.Write(cw, binary.LittleEndian, uint32(len(compressed))); err != nil {
		return fmt.Errorf("write compressed size: %w", err)
	}

	if _, err := cw.Write(compressed); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	// Footer checksum covers everything before it.
	if err := binary.Write(w, binary.LittleEndian, cw.Sum()); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}

	return nil
}

// Load reads a model previously written by Save. The checksum is
// verified before the payload is decoded.
func Load(r io.Reader) (*Model, error) {
	cr := newChecksumReader(r)

	var hdr fileHeader
	if err := binary.Read(cr, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if hdr.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}

	if hdr.Version != Version {
		return nil, ErrInvalidVersion
	}

	if Compression(hdr.Compression) > CompressionZSTD {
		return nil, ErrUnknownCompression
	}

	name := make([]byte, hdr.CodecNameLen)
	if _, err := io.ReadFull(cr, name); err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}

	c, ok := codecByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	var uncompressedSize, compressedSize uint32
	if err := binary.Read(cr, binary.LittleEndian, &uncompressedSize); err != nil {
		return nil, fmt.Errorf("read payload size: %w", err)
	}

	if err := binary.Read(cr, binary.LittleEndian, &compressedSize); err != nil {
		return nil, fmt.Errorf("read compressed size: %w", err)
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(cr, compressed); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var footer uint32
	if err := binary.Read(r, binary.LittleEndian, &footer); err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}

	if err := cr.Verify(footer); err != nil {
		return nil, err
	}

	payload, err := decompress(compressed, uncompressedSize, Compression(hdr.Compression))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	var m Model
	if err := c.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	return &m, nil
}
