package nmap

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

const stateOpen = "open"

type run struct {
	Hosts []host `xml:"host"`
}

type host struct {
	Addresses []address `xml:"address"`
	Ports     []port    `xml:"ports>port"`
}

type address struct {
	Addr string `xml:"addr,attr"`
}

type port struct {
	ID      string   `xml:"portid,attr"`
	State   *state   `xml:"state"`
	Service *service `xml:"service"`
}

type state struct {
	State string `xml:"state,attr"`
}

type service struct {
	Name    string `xml:"name,attr"`
	Product string `xml:"product,attr"`
	Version string `xml:"version,attr"`
}

// Parse reads an nmap XML report and returns every open port with a
// detected service. Hosts without an address are skipped.
func Parse(r io.Reader) ([]domain.Finding, error) {
	var report run
	if err := xml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	var findings []domain.Finding
	for _, h := range report.Hosts {
		if len(h.Addresses) == 0 {
			continue
		}

		ip := h.Addresses[0].Addr
		if ip == "" {
			ip = "Unknown"
		}

		for _, p := range h.Ports {
			if p.State == nil || p.State.State != stateOpen {
				continue
			}

			if p.Service == nil || p.Service.Name == "" {
				continue
			}

			findings = append(findings, domain.Finding{
				IP:      ip,
				Port:    p.ID,
				Service: p.Service.Name,
				Version: p.Service.Version,
				Product: p.Service.Product,
			})
		}
	}

	return findings, nil
}
