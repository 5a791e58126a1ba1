// Package walletservice is the stateless dispatch layer SPEC_FULL.md §4.7
// describes: every call is a pure function of its arguments, deriving a
// seed from a mnemonic and walking the chain registry to produce one or
// many wallet.Address values. Nothing here is persisted between calls —
// replacing internal/services/address/service.go (teacher)'s single
// AddressService struct, which held a *hdkeychain.ExtendedKey field and
// dispatched through a long switch of Derive*Address methods, with a
// package of pure functions plus the tagged-variant chains.Driver
// registry.
package walletservice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arcsign/derive/internal/apierr"
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/chains"
	"github.com/arcsign/derive/internal/mnemonic"
	"github.com/arcsign/derive/internal/wallet"
)

const (
	// MinBatchCount and MaxBatchCount bound generate_batch's count
	// parameter; outside this range the request is BAD_REQUEST.
	MinBatchCount = 1
	MaxBatchCount = 100
)

// GenerateRequest is the input shared by single and batch generation.
// to_seed is independent of wordlist language, so
// unlike mnemonic.Generate/Validate this never needs a Language field.
type GenerateRequest struct {
	Mnemonic   string
	Passphrase string
}

func (r GenerateRequest) seed() ([]byte, error) {
	return mnemonic.ToSeedUnchecked(r.Mnemonic, r.Passphrase)
}

// GenerateOne derives a single address for one chain at one index.
func GenerateOne(req GenerateRequest, chainType chainregistry.ChainType, index uint32) (wallet.Address, error) {
	driver, ok := chains.Get(chainType)
	if !ok {
		return wallet.Address{}, apierr.New(apierr.CodeBadRequest, "unknown chain type %q", chainType)
	}
	seed, err := req.seed()
	if err != nil {
		return wallet.Address{}, err
	}
	addr, err := driver.GenerateAddress(seed, index)
	if err != nil {
		return wallet.Address{}, apierr.Wrap(apierr.CodeCryptoError, err)
	}
	return addr, nil
}

// BatchRequest describes a generate_batch call: one or more chains, each
// walked over [StartIndex, StartIndex+Count).
type BatchRequest struct {
	GenerateRequest
	ChainTypes []chainregistry.ChainType
	StartIndex uint32
	Count      int
}

// GenerateBatch derives addresses for every (chain_type, index) pair in
// declared chain order, then index order within each chain — the fixed
// ordering SPEC_FULL.md §5 requires for a stable response shape.
// Per-chain work runs concurrently via errgroup, but results are
// reassembled into that same declared order before returning, so
// concurrency never becomes observable in the output.
func GenerateBatch(ctx context.Context, req BatchRequest) ([]wallet.Address, error) {
	if req.Count < MinBatchCount || req.Count > MaxBatchCount {
		return nil, apierr.New(apierr.CodeBadRequest, "count must be between %d and %d, got %d", MinBatchCount, MaxBatchCount, req.Count)
	}
	if len(req.ChainTypes) == 0 {
		return nil, apierr.New(apierr.CodeBadRequest, "at least one chain_type is required")
	}
	seed, err := req.seed()
	if err != nil {
		return nil, err
	}

	drivers := make([]chains.Driver, len(req.ChainTypes))
	for i, ct := range req.ChainTypes {
		d, ok := chains.Get(ct)
		if !ok {
			return nil, apierr.New(apierr.CodeBadRequest, "unknown chain type %q", ct)
		}
		drivers[i] = d
	}

	results := make([][]wallet.Address, len(drivers))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range drivers {
		i, d := i, d
		g.Go(func() error {
			addrs := make([]wallet.Address, req.Count)
			for j := 0; j < req.Count; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				index := req.StartIndex + uint32(j)
				addr, err := d.GenerateAddress(seed, index)
				if err != nil {
					return apierr.Wrap(apierr.CodeCryptoError, err)
				}
				addrs[j] = addr
			}
			results[i] = addrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]wallet.Address, 0, len(drivers)*req.Count)
	for _, addrs := range results {
		out = append(out, addrs...)
	}
	return out, nil
}

// ChainInfos returns every registered chain's metadata, for the
// /wallet/types discovery endpoint.
func ChainInfos() []chainregistry.ChainInfo {
	drivers := chains.All()
	out := make([]chainregistry.ChainInfo, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, d.Info())
	}
	return out
}
