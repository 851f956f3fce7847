package recommender

// Area codes, in declaration order. The order is part of the contract:
// tie-breaking in the top-areas ranking is stable over this sequence.
const (
	AreaAI     = "AI"
	AreaData   = "DATA"
	AreaSec    = "SEC"
	AreaWeb    = "WEB"
	AreaMobile = "MOBILE"
	AreaCloud  = "CLOUD"
	AreaNet    = "NET"
	AreaIoT    = "IOT"
	AreaWeb3   = "WEB3"
	AreaUX     = "UX"
	AreaPM     = "PM"
)

// Areas lists all area codes in declaration order.
var Areas = []string{
	AreaAI, AreaData, AreaSec, AreaWeb, AreaMobile, AreaCloud,
	AreaNet, AreaIoT, AreaWeb3, AreaUX, AreaPM,
}

// AreaLabels maps area codes to display names.
var AreaLabels = map[string]string{
	AreaAI:     "Artificial Intelligence",
	AreaData:   "Data / Analytics",
	AreaSec:    "Security / Cybersecurity",
	AreaWeb:    "Web Development",
	AreaMobile: "Mobile Development",
	AreaCloud:  "Cloud / DevOps",
	AreaNet:    "Networking",
	AreaIoT:    "Internet of Things",
	AreaWeb3:   "Web3 / Blockchain",
	AreaUX:     "UX / Design",
	AreaPM:     "Project Management",
}
