package platform

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	buzzFrequency = 150.0
	buzzVolume    = 0.35
)

// Buzzer renders vibration patterns as a low buzz on the speaker. Even
// entries of a pattern are buzz segments, odd entries are gaps.
type Buzzer struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	play       func(beep.Streamer)
}

// NewBuzzer initialises the speaker and returns a Buzzer using it.
func NewBuzzer() (*Buzzer, error) {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Buzzer{
		sampleRate: sampleRate,
		play: func(streamer beep.Streamer) {
			speaker.Play(streamer)
		},
	}, nil
}

// Pulse plays pattern without waiting for it to finish.
func (buzzer *Buzzer) Pulse(pattern []time.Duration) {
	buzzer.mu.Lock()
	defer buzzer.mu.Unlock()
	if buzzer.play == nil || len(pattern) == 0 {
		return
	}
	buzzer.play(buzzer.Stream(pattern))
}

// Stream converts pattern into buzz and silence segments.
func (buzzer *Buzzer) Stream(pattern []time.Duration) beep.Streamer {
	segments := make([]beep.Streamer, 0, len(pattern))
	for index, duration := range pattern {
		samples := buzzer.sampleRate.N(duration)
		if samples <= 0 {
			continue
		}
		if index%2 == 0 {
			segments = append(segments, beep.Take(samples, buzzer.tone()))
		} else {
			segments = append(segments, beep.Silence(samples))
		}
	}
	return beep.Seq(segments...)
}

func (buzzer *Buzzer) tone() beep.Streamer {
	step := 2 * math.Pi * buzzFrequency / float64(buzzer.sampleRate)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := buzzVolume * math.Sin(phase)
			samples[i][0] = value
			samples[i][1] = value
			phase += step
		}
		return len(samples), true
	})
}

// LogHaptics stands in when no audio device is available.
type LogHaptics struct{}

// Pulse logs the pattern.
func (LogHaptics) Pulse(pattern []time.Duration) {
	log.Printf("haptics: pulse %v", pattern)
}

// HapticsPlayer is satisfied by Buzzer and LogHaptics.
type HapticsPlayer interface {
	Pulse(pattern []time.Duration)
}

// NewHaptics returns a Buzzer, or LogHaptics when the speaker cannot start.
func NewHaptics() HapticsPlayer {
	buzzer, err := NewBuzzer()
	if err != nil {
		log.Printf("haptics: %v, falling back to log output", err)
		return LogHaptics{}
	}
	return buzzer
}
