package shellpath

import "github.com/Norgate-AV/ocsview/internal/clsid"

// Known library and user-folder categories found in sub-identifier records
// beneath the libraries and user-files roots.
var (
	documentsLibrary = clsid.MustParse("{7B0DB17D-9CD2-4A93-9733-46CC89022E7C}")
	musicLibrary     = clsid.MustParse("{2112AB0A-C86A-4FFE-A368-0DE96E47012E}")
	picturesLibrary  = clsid.MustParse("{A990AE9F-A03B-4E80-94BC-9912D7504104}")
	videosLibrary    = clsid.MustParse("{491E922F-5643-4AF4-A7EB-4E7A138D8174}")

	documentsFolder = clsid.MustParse("{FDD39AD0-238F-46AF-ADB4-6C85480369C7}")
	downloadsFolder = clsid.MustParse("{374DE290-123F-4565-9164-39C4925E467B}")
	musicFolder     = clsid.MustParse("{4BD8D571-6D19-48D3-BE97-422220080E43}")
	picturesFolder  = clsid.MustParse("{33E28130-4E1E-4676-835A-98395C3BC3BB}")
	videosFolder    = clsid.MustParse("{18989B1D-99B5-455B-841C-AB7C74E4DDFC}")
	desktopFolder   = clsid.MustParse("{B4BFCC3A-DB2C-424C-B029-7FE99A87C641}")
)

var subIdentifierNames = map[clsid.CLSID]string{
	documentsLibrary: "Documents",
	musicLibrary:     "Music",
	picturesLibrary:  "Pictures",
	videosLibrary:    "Videos",

	documentsFolder: "Documents",
	downloadsFolder: "Downloads",
	musicFolder:     "Music",
	picturesFolder:  "Pictures",
	videosFolder:    "Videos",
	desktopFolder:   "Desktop",
}

// subIdentifierName maps a sub-identifier to its category name, falling back
// to the ::{GUID} notation for categories outside the known set.
func subIdentifierName(c clsid.CLSID) string {
	if name, ok := subIdentifierNames[c]; ok {
		return name
	}

	return "::" + c.String()
}
