package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// feedFiles is a minimal West Midlands feed: one route whose trip runs
// Six Ways -> Aston University -> Kings Heath.
var feedFiles = map[string]string{
	"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
		"TFWM,Transport for West Midlands,https://www.tfwm.org.uk,Europe/London\n",
	"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
		"WK,1,1,1,1,1,0,0,20250101,20261231\n",
	"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
		"ASTU,Aston University,52.4920,-1.8890\n" +
		"SIXW,Six Ways,52.6000,-1.8900\n" +
		"KINH,Kings Heath,52.3000,-1.8900\n",
	"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type,route_color\n" +
		"R1,TFWM,51,Walsall - City Centre,3,CC0000\n",
	"trips.txt": "route_id,service_id,trip_id,shape_id\n" +
		"R1,WK,T1,S1\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"T1,08:00:00,08:00:00,SIXW,1\n" +
		"T1,08:10:00,08:10:00,ASTU,2\n" +
		"T1,08:20:00,08:20:00,KINH,3\n",
	"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
		"S1,52.6000,-1.8900,1\n" +
		"S1,52.4920,-1.8890,2\n" +
		"S1,52.3000,-1.8900,3\n",
}

func feedZipBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range feedFiles {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeFeedZip writes the fixture feed to a temp file and returns its path.
func writeFeedZip(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tfwm_gtfs.zip")
	require.NoError(t, os.WriteFile(path, feedZipBytes(t), 0o644))
	return path
}
