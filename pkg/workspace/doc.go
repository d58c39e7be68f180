// Package workspace loads feature layers from a fiber design export directory.
//
// A workspace is a directory holding the shapefile file-sets produced by the
// design tool, one per layer, named OUT_<LayerName>.shp (plus the companion
// .dbf/.shx files). The package reads a layer into memory as an ordered list
// of features, each carrying a planar geometry and the attribute record from
// the .dbf table.
//
// # Reading a layer
//
//	layer, err := workspace.Read(dir, "Closures")
//	if err != nil {
//	    var nf *workspace.LayerNotFoundError
//	    if errors.As(err, &nf) {
//	        // the file-set is absent; checks report this as an error state
//	    }
//	}
//
// # Attribute semantics
//
// Attribute values come from the dBASE table as padded text. All values are
// trimmed on read, so a null marker, an all-spaces cell, and a zero-length
// string are indistinguishable: they all read back as "". Checks that test
// for "empty" rely on this. Numeric columns are parsed on demand via
// Feature.AttrFloat.
//
// The reader does not validate attribute schemas. Required columns differ per
// check, so each check verifies the columns it needs via Layer.MissingFields.
package workspace
