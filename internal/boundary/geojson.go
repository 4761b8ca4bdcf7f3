package boundary

import (
	"io"

	"github.com/paulmach/orb/geojson"
)

// ToFeature converts b into a GeoJSON Feature carrying its name and
// admin level as properties, for the optional --geojson-out debug
// export of build-index.
func (b *Boundary) ToFeature() *geojson.Feature {
	f := geojson.NewFeature(b.Geometry)
	f.Properties = geojson.Properties{
		"name":        b.Name,
		"admin_level": b.AdminLevel,
	}
	return f
}

// WriteFeatureCollection writes every boundary as a GeoJSON
// FeatureCollection to w, for inspecting a build-index run visually.
func WriteFeatureCollection(w io.Writer, boundaries []*Boundary) error {
	fc := geojson.NewFeatureCollection()
	for _, b := range boundaries {
		fc.Append(b.ToFeature())
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
