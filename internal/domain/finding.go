package domain

// Finding is an open port with a detected service, as reported by nmap.
type Finding struct {
	IP      string
	Port    string
	Service string
	Version string
	Product string
}
