package mapgen

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/snapshot"
)

// Save writes the map as a snapshot and returns the path written.
func (m *Map) Save(path string) (string, error) {
	return snapshot.SaveFile(path, m.Network)
}

// Write encodes the map as a snapshot to w.
func (m *Map) Write(w io.Writer) error {
	return snapshot.Encode(w, m.Network)
}

// Load restores a map saved with Save. One-way maps keep their direction.
func Load(path string, logger *slog.Logger) (*Map, error) {
	net := network.New[Location]()
	if err := snapshot.LoadFile(path, net, ParseLocation); err != nil {
		return nil, err
	}

	return Wrap(net, logger), nil
}

// Read decodes a map snapshot from r.
func Read(r io.Reader, logger *slog.Logger) (*Map, error) {
	net := network.New[Location]()
	if err := snapshot.Decode(r, net, ParseLocation); err != nil {
		return nil, err
	}

	return Wrap(net, logger), nil
}
