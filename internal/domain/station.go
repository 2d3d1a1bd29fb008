package domain

// Station is one entry in the audio-stream catalog
type Station struct {
	Name string
	URL  string
}

// DefaultStations is the built-in stream catalog. Settings may
// replace it; the catalog is fixed for the controller's lifetime.
var DefaultStations = []Station{
	{Name: "Lofi Girl", URL: "https://play.streamafrica.net/lofiradio"},
	{Name: "Chillhop", URL: "http://stream.zeno.fm/fyn8eh3h5f8uv"},
	{Name: "Box Lofi", URL: "http://stream.zeno.fm/f3wgaqqylc9uv"},
	{Name: "The Bootleg Boy", URL: "http://stream.zeno.fm/0r0xa792kwzuv"},
	{Name: "Radio Spinner", URL: "https://live.radiospinner.com/lofi-hip-hop-64"},
}
