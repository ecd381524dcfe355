package contract

// GetEdition returns the full public state of the edition in one call, the
// main read path for frontends.
func GetEdition() *EditionView {
	ed := requireInitialized()
	return &EditionView{
		Owner:       AddressToString(ed.Owner),
		Name:        ed.Name,
		Symbol:      ed.Symbol,
		Description: ed.Description,
		ContentURL:  ed.ContentURL,
		ContentHash: ed.ContentHash,
		ContentType: ed.ContentType,
		Size:        ed.Size,
		Minted:      mintedCount(),
		Burned:      burnedCount(),
		TotalSupply: aliveSupply(),
		Price:       getSalePrice().Dec(),
		RoyaltyBps:  ed.RoyaltyBps,
	}
}

// GetURI reports the current edition content URL.
func GetURI() *URLArgs {
	ed := requireInitialized()
	return &URLArgs{URL: ed.ContentURL}
}

// TotalSupply reports the alive token count (minted minus burned).
func TotalSupply() *SupplyView {
	requireInitialized()
	return &SupplyView{TotalSupply: aliveSupply()}
}
