package constants

import (
	hermes "github.com/hermes-io/hermes"
)

type Header struct {
	Name  string
	Value string
}

var (
	DefaultResponseHeaders = []Header{
		{Name: "Server", Value: "Hermes/" + hermes.VERSION},
	}
	DefaultForwarderRequestHeaders = []Header{
		{Name: "User-Agent", Value: "Hermes/" + hermes.VERSION},
		{Name: "Content-Type", Value: "application/json"},
	}
)
