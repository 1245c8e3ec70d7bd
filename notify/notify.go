// Package notify alerts the user when a countdown completes through the
// system beeper, desktop notifications and sound playback
package notify

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/countdown/internal/pathutil"
)

var soundExts = []string{".ogg", ".mp3", ".flac", ".wav"}

// Device renders vibration patterns as beeps and plays sounds from a
// directory of audio files.
type Device struct {
	beep     func(freq float64, duration int) error
	alert    func(title, message, icon string) error
	sleep    func(time.Duration)
	SoundDir string
	Icon     string
	// Desktop enables desktop notifications in Alert
	Desktop bool
}

// New returns a device that resolves sound identifiers in soundDir.
func New(soundDir string, desktop bool) *Device {
	return &Device{
		SoundDir: soundDir,
		Desktop:  desktop,
		beep:     beeep.Beep,
		alert: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
		sleep: time.Sleep,
	}
}

// Vibrate beeps for the even entries of pattern and pauses for the odd ones.
func (d *Device) Vibrate(pattern []time.Duration) error {
	for i, segment := range pattern {
		if segment <= 0 {
			continue
		}

		if i%2 == 1 {
			d.sleep(segment)
			continue
		}

		err := d.beep(beeep.DefaultFreq, int(segment.Milliseconds()))
		if err != nil {
			return errBeep.Wrap(err)
		}
	}

	return nil
}

// Alert shows a desktop notification if they are enabled.
func (d *Device) Alert(title, message string) error {
	if !d.Desktop {
		return nil
	}

	return d.alert(title, message, d.Icon)
}

// PlaySound plays the named sound and blocks until playback ends.
func (d *Device) PlaySound(sound string) error {
	path, err := d.Resolve(sound)
	if err != nil {
		return err
	}

	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()
	speaker.Close()

	return nil
}

// Resolve maps a sound identifier to a file. Identifiers with an extension are
// paths; bare names are looked up in the sound directory.
func (d *Device) Resolve(sound string) (string, error) {
	ext := strings.ToLower(filepath.Ext(sound))
	if ext != "" {
		if !isSoundExt(ext) {
			return "", errInvalidSoundFormat.Fmt(sound)
		}

		_, err := os.Stat(sound)
		if err != nil {
			return "", errUnknownSound.Fmt(sound).Wrap(err)
		}

		return sound, nil
	}

	for _, ext := range soundExts {
		path := filepath.Join(d.SoundDir, sound+ext)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
	}

	return "", errUnknownSound.Fmt(sound)
}

// Sounds lists the identifiers of the sounds in the sound directory in
// natural order.
func (d *Device) Sounds() ([]string, error) {
	entries, err := os.ReadDir(d.SoundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	seen := make(map[string]bool)

	var names []string

	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !isSoundExt(ext) {
			continue
		}

		name := pathutil.StripExtension(e.Name())
		if seen[name] {
			continue
		}

		seen[name] = true

		names = append(names, name)
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}

func isSoundExt(ext string) bool {
	for _, v := range soundExts {
		if v == ext {
			return true
		}
	}

	return false
}

// decode opens the audio file at path. Closing the stream closes the file.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		f      fs.File
		err    error
		stream beep.StreamSeekCloser
		format beep.Format
	)

	f, err = os.Open(path)
	if err != nil {
		return nil, format, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	return stream, format, nil
}
