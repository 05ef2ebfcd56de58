package identity

import (
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Set is one freshly generated group of identifiers. The values are
// independent of each other.
type Set struct {
	// MachineID is 64 lowercase hex characters (telemetry.machineId)
	MachineID string `json:"machineId"`
	// SqmID is a UUID wrapped in braces (telemetry.sqmId)
	SqmID string `json:"sqmId"`
	// DevDeviceID is a version 4 UUID (telemetry.devDeviceId)
	DevDeviceID string `json:"devDeviceId"`
	// MachineIDFile is the version 4 UUID written to the machineid file
	MachineIDFile string `json:"machineIdFile"`
}

// Generator produces identifiers from a non-cryptographic source
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator with a fixed seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededGenerator seeds from the clock
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// MachineID returns 32 random bytes as lowercase hex
func (g *Generator) MachineID() string {
	b := make([]byte, 32)
	g.rng.Read(b)
	return hex.EncodeToString(b)
}

// UUID returns a version 4, RFC 4122 variant UUID
func (g *Generator) UUID() string {
	// rand.Rand.Read never fails, so neither does this
	u, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		panic(err)
	}
	return u.String()
}

// SqmID returns a UUID wrapped in braces
func (g *Generator) SqmID() string {
	return "{" + g.UUID() + "}"
}

// NewSet generates all four identifiers
func (g *Generator) NewSet() Set {
	return Set{
		MachineID:     g.MachineID(),
		SqmID:         g.SqmID(),
		DevDeviceID:   g.UUID(),
		MachineIDFile: g.UUID(),
	}
}
