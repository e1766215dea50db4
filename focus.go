package vtcore

// FocusReport returns the bytes to send the peer when UI focus changes,
// per §4.6. When reporting is disabled the event is silently swallowed.
func FocusReport(enabled, gained bool) []byte {
	if !enabled {
		return nil
	}
	if gained {
		return []byte("\x1b[I")
	}
	return []byte("\x1b[O")
}

// BracketedPasteLeader returns the leader envelope for a paste, or an empty
// slice when bracketed-paste mode is disabled (§4.6). The terminal never
// mutates the pasted bytes themselves.
func BracketedPasteLeader(enabled bool) []byte {
	if !enabled {
		return nil
	}
	return []byte("\x1b[200~")
}

// BracketedPasteTrailer returns the trailer envelope for a paste, or an
// empty slice when bracketed-paste mode is disabled (§4.6).
func BracketedPasteTrailer(enabled bool) []byte {
	if !enabled {
		return nil
	}
	return []byte("\x1b[201~")
}
