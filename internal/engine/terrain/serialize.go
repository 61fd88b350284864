package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedTerrainData is returned when a serialized terrain ends early.
var ErrTruncatedTerrainData = errors.New("terrain: truncated data")

const maxSerializedStringLen = 1 << 16

// Serialize writes the terrain configuration as ordered little-endian
// fields. Cell contents and the quadtree are derived state and are not
// written.
func (t *Terrain) Serialize(w io.Writer) error {
	if err := writeFields(w, t.entityID, t.layerMask); err != nil {
		return err
	}
	if err := writeString(w, t.materialPath); err != nil {
		return err
	}
	if err := writeFields(w, t.xzScale, t.yScale, int32(len(t.grassTypes))); err != nil {
		return err
	}
	for _, gt := range t.grassTypes {
		if err := writeFields(w, gt.Density, gt.Distance, int32(gt.Rotation)); err != nil {
			return err
		}
		if err := writeString(w, gt.ModelPath); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize restores a terrain configuration written by Serialize. The
// material itself is not loaded; the caller resolves MaterialPath and calls
// SetMaterial.
func (t *Terrain) Deserialize(r io.Reader) error {
	if err := readFields(r, &t.entityID, &t.layerMask); err != nil {
		return err
	}
	path, err := readString(r)
	if err != nil {
		return err
	}
	t.materialPath = path

	var count int32
	if err := readFields(r, &t.xzScale, &t.yScale, &count); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("terrain: invalid grass type count %d", count)
	}
	t.field.yScale = t.yScale

	types := make([]GrassType, 0, count)
	for i := int32(0); i < count; i++ {
		var gt GrassType
		var rotation int32
		if err := readFields(r, &gt.Density, &gt.Distance, &rotation); err != nil {
			return err
		}
		gt.Rotation = RotationMode(rotation)
		if gt.ModelPath, err = readString(r); err != nil {
			return err
		}
		types = append(types, gt)
	}
	t.grassTypes = types
	t.invalidateGrass()
	return nil
}

func writeFields(w io.Writer, fields ...any) error {
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}

func readFields(r io.Reader, fields ...any) error {
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrTruncatedTerrainData
			}
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := readFields(r, &n); err != nil {
		return "", err
	}
	if n > maxSerializedStringLen {
		return "", fmt.Errorf("terrain: string length %d out of range", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrTruncatedTerrainData
	}
	return string(buf), nil
}
