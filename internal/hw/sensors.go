package hw

import "context"

// FetchSensors returns every thermal sensor reading in enumeration order.
// Hosts without sensors yield an empty slice.
func (c *Collector) FetchSensors(ctx context.Context) []SensorEntry {
	sensors := []SensorEntry{}

	// gopsutil reports unreadable sensors as warnings next to the
	// readings it did get.
	temps, err := c.probe.Temperatures(ctx)
	if err != nil {
		c.logger.V(1).Info("sensor enumeration incomplete", "readings", len(temps), "error", err.Error())
	}

	for _, t := range temps {
		sensors = append(sensors, SensorEntry{
			Label:              t.SensorKey,
			TemperatureCelsius: float32(t.Temperature),
		})
	}

	return sensors
}
