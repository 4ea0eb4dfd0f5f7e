// Package render maps a hw.Snapshot to the labelled rows shown to users.
// Unit conversion happens here and nowhere else.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/hiveden/sysfetch/internal/hw"
)

// Placeholder is shown for every value that could not be determined.
const Placeholder = "---"

const (
	gib = 1024 * 1024 * 1024
	mib = 1024 * 1024
)

// Sections in display order.
const (
	SectionSystem  = "system"
	SectionDisks   = "disks"
	SectionSensors = "sensors"
	SectionDevices = "devices"
)

// Row is one labelled value.
type Row struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

// Rows converts snap into display rows. Every absent value becomes
// Placeholder.
func Rows(snap *hw.Snapshot) []Row {
	var rows []Row
	add := func(section, key, value string) {
		rows = append(rows, Row{Section: section, Key: key, Value: value})
	}

	add(SectionSystem, "memory", fmt.Sprintf("used %.2f of %.2f G",
		float64(snap.Memory.UsedBytes)/gib, float64(snap.Memory.TotalBytes)/gib))
	add(SectionSystem, "name", orPlaceholder(snap.OS.Name))
	add(SectionSystem, "kernel version", orPlaceholder(snap.OS.KernelVersion))
	add(SectionSystem, "os version", orPlaceholder(snap.OS.OSVersion))
	add(SectionSystem, "cpu count", strconv.FormatUint(uint64(snap.CPU.LogicalCount), 10))
	if snap.CPU.CurrentFreqMHz != nil {
		add(SectionSystem, "cpu freq", fmt.Sprintf("%d MHz", *snap.CPU.CurrentFreqMHz))
	} else {
		add(SectionSystem, "cpu freq", Placeholder)
	}

	for _, d := range snap.Disks {
		add(SectionDisks, d.Name, fmt.Sprintf("%d available of %d G", d.AvailableBytes/gib, d.TotalBytes/gib))
	}

	for _, s := range snap.Sensors {
		add(SectionSensors, s.Label, fmt.Sprintf("%s °C", formatFloat(s.TemperatureCelsius)))
	}

	brand := snap.CPU.Brand
	if brand == "" {
		brand = Placeholder
	}
	add(SectionDevices, "cpu brand", brand)

	if snap.GPU == nil {
		add(SectionDevices, "gpu", Placeholder)
		return rows
	}
	add(SectionDevices, "gpu brand", snap.GPU.Name)
	add(SectionDevices, "gpu mem", fmt.Sprintf("%d used of %d MB",
		snap.GPU.MemoryUsedBytes/mib, snap.GPU.MemoryTotalBytes/mib))
	if snap.GPU.TemperatureCelsius != nil {
		add(SectionDevices, "gpu temp", fmt.Sprintf("%s °C", formatFloat(*snap.GPU.TemperatureCelsius)))
	} else {
		add(SectionDevices, "gpu temp", Placeholder)
	}

	return rows
}

// Text writes rows as aligned columns with a heading per section.
func Text(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	section := ""
	for _, r := range rows {
		if r.Section != section {
			if section != "" {
				fmt.Fprintln(tw)
			}
			section = r.Section
			fmt.Fprintf(tw, "[%s]\n", section)
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Key, r.Value)
	}
	return tw.Flush()
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
