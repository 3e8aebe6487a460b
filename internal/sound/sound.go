// internal/sound/sound.go
package sound

import (
	"encoding/binary"
	"log"
	"math"
	"sync"

	"go-lane-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	contextOnce sync.Once
	context     *audio.Context
)

// sharedContext - ebiten допускает только один аудиоконтекст на процесс.
func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		context = audio.NewContext(SampleRate)
	})
	return context
}

// Player проигрывает короткие синтезированные сигналы на события ядра.
// События приходят из очереди ядра между тиками; звук не влияет на игру.
type Player struct {
	ctx     *audio.Context
	sounds  map[event.EventType][]byte
	Enabled bool
}

// NewPlayer готовит буферы звуков заранее, чтобы не синтезировать их в кадре.
func NewPlayer() *Player {
	p := &Player{
		ctx: sharedContext(),
		sounds: map[event.EventType][]byte{
			event.UnitAttacked:    Blip(SampleRate, 660, 0.06, 0.25),
			event.FriendlyDied:    Sweep(SampleRate, 440, 180, 0.25, 0.3),
			event.BaseDamaged:     Blip(SampleRate, 110, 0.2, 0.4),
			event.FriendlySpawned: Blip(SampleRate, 880, 0.04, 0.15),
		},
		Enabled: true,
	}
	log.Printf("Audio ready: %d Hz, %d sounds", SampleRate, len(p.sounds))
	return p
}

func (p *Player) OnEvent(e event.Event) {
	if !p.Enabled {
		return
	}
	// Звук удара только для союзников
	if a, ok := e.Data.(event.Attack); ok && !a.Friendly {
		return
	}
	buf, ok := p.sounds[e.Type]
	if !ok {
		return
	}
	p.ctx.NewPlayerFromBytes(buf).Play()
}

// Blip синтезирует затухающую синусоиду: 16 бит, стерео, little-endian.
func Blip(sampleRate int, freq, seconds, volume float64) []byte {
	return Sweep(sampleRate, freq, freq, seconds, volume)
}

// Sweep - синусоида с линейным сдвигом частоты от from к to.
func Sweep(sampleRate int, from, to, seconds, volume float64) []byte {
	n := int(float64(sampleRate) * seconds)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		envelope := 1 - t
		v := int16(math.Sin(phase) * envelope * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
