package rtp

// Version describes one known RTP release. The ID doubles as the catalog
// subdirectory name and as the value games put in their metadata.
type Version struct {
	ID          string
	Description string
}

// versions lists every release the packager recognizes, in listing order.
// Identifiers encode engine generation, language and distributor.
var versions = []Version{
	{ID: "2000-jp", Description: "RPG Maker 2000 - Japanese (original)"},
	{ID: "2000-en-don-miguel", Description: "RPG Maker 2000 - English (Don Miguel)"},
	{ID: "2000-en-official", Description: "RPG Maker 2000 - English (official)"},
	{ID: "2003-jp", Description: "RPG Maker 2003 - Japanese (original)"},
	{ID: "2003-en-rpg-advocate", Description: "RPG Maker 2003 - English (RPG Advocate)"},
	{ID: "2003-ru-kovnerov", Description: "RPG Maker 2003 - Russian (Vlad Kovnerov)"},
	{ID: "2003-en-official", Description: "RPG Maker 2003 - English (official)"},
	{ID: "2003-en-maker-universe", Description: "RPG Maker 2003 - English (Maker Universe)"},
	{ID: "2003-ko-nioting", Description: "RPG Maker 2003 - Korean (니오팅)"},
	{ID: "easyrpg", Description: "EasyRPG RTP replacement project"},
}

// Versions returns every known RTP release in listing order.
func Versions() []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	return out
}

// Known reports whether id names a recognized RTP release.
func Known(id string) bool {
	for _, v := range versions {
		if v.ID == id {
			return true
		}
	}
	return false
}
