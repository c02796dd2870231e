package ui

import (
	"fmt"
	"strings"

	timefmt "github.com/itchyny/timefmt-go"

	"github.com/ftahirops/ttypanel/config"
	"github.com/ftahirops/ttypanel/model"
	"github.com/ftahirops/ttypanel/util"
)

// Field widths of the fixed page layout.
const (
	clockLine     = 39
	hostnameWidth = -14
	kernelWidth   = -12
	labelWidth    = -8
	cpuWidth      = -9
	driveWidth    = -33
	capacityWidth = -10
	percentWidth  = -9
)

// Page renders one full screen of the panel from a snapshot.
type Page struct {
	cfg config.Config
	w   *Writer
}

func NewPage(cfg config.Config, w *Writer) *Page {
	return &Page{cfg: cfg, w: w}
}

// Render writes the complete page: clock, host identity block, uptime,
// CPU load and temperature, then up to MaxDrives drive rows.
func (p *Page) Render(snap *model.Snapshot) {
	p.renderClock(snap)
	p.renderHost(snap)
	p.renderCPU(snap)
	p.renderDrives(snap)
}

func (p *Page) renderClock(snap *model.Snapshot) {
	ts := timefmt.Format(snap.Timestamp, p.cfg.DateTimeFormat)
	// Approximate centering on the 39-column line: right-justify into
	// the text width plus half the slack. Kept as-is for layout
	// compatibility with earlier panel generations.
	width := len(ts) + (clockLine-len(ts))/2
	p.w.Write(ts, Style{Colour: p.cfg.DataColour, Width: width, Newline: true})
	p.w.Write(" ", Style{Newline: true})
}

func (p *Page) renderHost(snap *model.Snapshot) {
	label := p.cfg.LabelColour
	data := p.cfg.DataColour

	p.w.Write("Host:", Style{Colour: label, Width: labelWidth})
	p.w.Write(snap.Hostname, Style{Colour: data, Width: hostnameWidth})
	p.w.Write(snap.IP, Style{Colour: data, Newline: true})

	os := strings.TrimSpace(fmt.Sprintf("%s %s %s",
		capitalize(snap.OSName), snap.OSVersion, capitalize(snap.OSCodename)))
	p.w.Write("OS:", Style{Colour: label, Width: labelWidth})
	p.w.Write(os, Style{Colour: data, Newline: true})

	p.w.Write("Kernel:", Style{Colour: label, Width: labelWidth})
	p.w.Write(snap.Kernel, Style{Colour: data, Width: kernelWidth, Newline: true})

	p.w.Write("Uptime:", Style{Colour: label, Width: labelWidth})
	p.w.Write(util.FormatElapsed(snap.UptimeSec), Style{Colour: data, Newline: true})
}

func (p *Page) renderCPU(snap *model.Snapshot) {
	p.w.Write("CPU:", Style{Colour: p.cfg.LabelColour, Width: labelWidth})
	p.w.Write(fmt.Sprintf("%.1f%%", snap.CPUPercent), Style{Colour: p.cfg.DataColour, Width: cpuWidth})

	band := Band(snap.CPUTempC,
		float64(p.cfg.CPUTempLow), float64(p.cfg.CPUTempHigh),
		p.cfg.CPUTempColourNormal, p.cfg.CPUTempColourMid, p.cfg.CPUTempColourHigh)
	p.w.Write("Temp:", Style{Colour: p.cfg.LabelColour, Width: -6})
	p.w.Write(fmt.Sprintf("%.0fC", snap.CPUTempC), Style{Colour: band, Newline: true})
}

func (p *Page) renderDrives(snap *model.Snapshot) {
	drives := SelectDrives(snap.Mounts, p.cfg.DrivePatterns, MaxDrives)
	if len(drives) == 0 {
		return
	}
	p.w.Write(" ", Style{Newline: true})
	for _, d := range drives {
		band := Band(d.UsedPercent,
			float64(p.cfg.DriveUsageLow), float64(p.cfg.DriveUsageHigh),
			p.cfg.DriveColourNormal, p.cfg.DriveColourMid, p.cfg.DriveColourHigh)

		p.w.Write(d.Device+" "+d.Mountpoint, Style{Colour: p.cfg.LabelColour, Width: driveWidth, Newline: true})
		p.w.Write(d.Used+"/"+d.Total, Style{Colour: p.cfg.DataColour, Width: capacityWidth})
		p.w.Write(fmt.Sprintf("%.1f%%", d.UsedPercent), Style{Colour: band, Width: percentWidth})
		p.w.Write(d.Free+" free", Style{Colour: band, Newline: true})
	}
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
