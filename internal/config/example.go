package config

import (
	"fmt"
	"os"
)

// Example is a starter configuration written by `fetcharr config init`.
const Example = `# fetcharr configuration

[radarr]
url = "http://localhost:7878"
api_key = "${RADARR_API_KEY}"

[sonarr]
url = "http://localhost:8989"
api_key = "${SONARR_API_KEY}"

[tmdb]
api_key = "${TMDB_API_KEY}"
language = "en-US"
official_only = true
video_types = ["Trailer"]
source_site = "YouTube"

[app]
trailer_dir = "trailers"
only_one_trailer = true
free_space_gb = 5
scan_interval = "12h"

[ytdlp]
format = "bestvideo+bestaudio"
max_duration_seconds = 600
search_prefixes = ["ytsearch"]
search_keyword = "trailer"

[ffmpeg]
command_template = "ffmpeg -i {input} -threads {threads} -bufsize {buffer} -c:v copy -c:a copy {output} -y"
output_extension = "mkv"

[log]
level = "info"

[history]
database = "./data/fetcharr.db"
`

// WriteExample writes the example config to path, refusing to overwrite.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(Example), 0o644)
}
