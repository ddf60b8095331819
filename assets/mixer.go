package assets

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/orbitgates/common"
)

const impactCooldown = 80 * time.Millisecond

// ImpactMixer plays the collision cue. Louder hits play louder, and
// overlapping hits inside the cooldown collapse into one sound.
type ImpactMixer struct {
	ctx       *audio.Context
	pcm       []byte
	threshold float64
	last      time.Time
	now       func() time.Time
}

// NewImpactMixer creates the process-wide audio context, so it may only be
// called once.
func NewImpactMixer(threshold float64) (*ImpactMixer, error) {
	pcm, err := LoadPCM("impact.wav")
	if err != nil {
		return nil, err
	}
	return &ImpactMixer{
		ctx:       audio.NewContext(sampleRate),
		pcm:       pcm,
		threshold: threshold,
		now:       time.Now,
	}, nil
}

func (m *ImpactMixer) PlayImpact(relativeSpeed float64) {
	t := m.now()
	if t.Sub(m.last) < impactCooldown {
		return
	}
	m.last = t

	p := m.ctx.NewPlayerFromBytes(m.pcm)
	p.SetVolume(ImpactVolume(relativeSpeed, m.threshold))
	p.Play()
}

// ImpactVolume maps a contact speed to a player volume. The threshold
// speed plays quietly and four times the threshold plays at full volume.
func ImpactVolume(speed, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	f := (speed - threshold) / (3 * threshold)
	return common.Lerp(0.25, 1, common.Clamp(f, 0, 1))
}
