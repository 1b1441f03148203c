// Command arpd replays ethernet frames from a pcap capture through the
// decoding core: it learns address bindings from ARP traffic, answers
// requests for its configured protocol address, and writes the generated
// reply frames to an output capture.
package main

import (
	"io"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/juju/ratelimit"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	net "github.com/progbits/xv6-net"
	"github.com/progbits/xv6-net/internal/errors"
)

var (
	configFlag  = pflag.String("config", "arpd.toml", "Path to the TOML config file.")
	verboseFlag = pflag.BoolP("verbose", "v", false, "Log every frame, not just ARP activity.")
)

// pcapFrameWriter writes generated frames to a capture file, subject to
// an optional token-bucket rate limit.
type pcapFrameWriter struct {
	w      *pcapgo.Writer
	bucket *ratelimit.Bucket
	log    zerolog.Logger

	written, limited int
}

func (p *pcapFrameWriter) WriteFrame(b []byte) error {
	if p.bucket != nil && p.bucket.TakeAvailable(1) == 0 {
		p.limited++
		p.log.Warn().Int("len", len(b)).Msg("reply dropped by rate limit")
		return nil
	}
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: len(b),
		Length:        len(b),
	}
	if err := p.w.WritePacket(ci, b); err != nil {
		return errors.Annotate(err, "write reply frame")
	}
	p.written++
	return nil
}

func main() {
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if *verboseFlag {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configFlag).Msg("cannot load config")
	}
	log.Info().
		Stringer("mac", cfg.mac).
		Stringer("ip", cfg.ip).
		Str("input", cfg.input).
		Str("output", cfg.output).
		Msg("starting")

	in, err := os.Open(cfg.input)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input capture")
	}
	defer in.Close()
	reader, err := pcapgo.NewReader(in)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input capture")
	}

	out, err := os.Create(cfg.output)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create output capture")
	}
	defer out.Close()
	writer := pcapgo.NewWriter(out)
	if err := writer.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatal().Err(err).Msg("cannot write output capture header")
	}

	fw := &pcapFrameWriter{w: writer, log: log}
	if cfg.replyRate > 0 {
		fw.bucket = ratelimit.NewBucketWithRate(cfg.replyRate, cfg.replyBurst)
	}

	cache := &net.ARPCache{}
	responder := net.NewARPResponder(cfg.mac, cfg.ip, cache, fw)

	var demux net.Demux
	demux.Register(net.EtherTypeARP, responder.HandlePacket)

	frames := 0
	for {
		data, _, err := reader.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Int("frame", frames).Msg("cannot read frame")
		}
		frames++

		if err := demux.HandleFrame(data); err != nil {
			if net.IsTooShort(err) {
				log.Debug().Err(err).Int("frame", frames).Msg("dropped truncated frame")
				continue
			}
			log.Fatal().Err(err).Int("frame", frames).Msg("cannot handle frame")
		}
		log.Debug().Int("frame", frames).Int("len", len(data)).Msg("handled frame")
	}

	for _, entry := range cache.Entries() {
		log.Info().
			Stringer("mac", entry.HardwareAddr).
			Stringer("ip", entry.ProtocolAddr).
			Msg("learned binding")
	}
	log.Info().
		Int("frames", frames).
		Uint64("dropped", demux.Dropped()).
		Int("replies", fw.written).
		Int("rate_limited", fw.limited).
		Msg("done")
}
