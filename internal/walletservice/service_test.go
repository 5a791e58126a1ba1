package walletservice

import (
	"context"
	"testing"

	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/chains"
)

func TestMain(m *testing.M) {
	chains.Init(chainregistry.New())
	m.Run()
}

const fixedPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateOneReturnsAnAddress(t *testing.T) {
	req := GenerateRequest{Mnemonic: fixedPhrase}
	addr, err := GenerateOne(req, chainregistry.Ethereum, 0)
	if err != nil {
		t.Fatalf("GenerateOne: %v", err)
	}
	want := "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	if addr.Address != want {
		t.Fatalf("address = %s, want %s", addr.Address, want)
	}
}

func TestGenerateOneUnknownChainType(t *testing.T) {
	req := GenerateRequest{Mnemonic: fixedPhrase}
	if _, err := GenerateOne(req, chainregistry.ChainType("not-a-chain"), 0); err == nil {
		t.Fatal("expected an error for an unknown chain type")
	}
}

func TestGenerateOneEmptyMnemonic(t *testing.T) {
	req := GenerateRequest{Mnemonic: ""}
	if _, err := GenerateOne(req, chainregistry.Ethereum, 0); err == nil {
		t.Fatal("expected an error for an empty mnemonic")
	}
}

func TestGenerateBatchOrdersByChainThenIndex(t *testing.T) {
	req := BatchRequest{
		GenerateRequest: GenerateRequest{Mnemonic: fixedPhrase},
		ChainTypes:      []chainregistry.ChainType{chainregistry.BTCLegacy, chainregistry.Ethereum},
		StartIndex:      0,
		Count:           2,
	}
	addrs, err := GenerateBatch(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(addrs) != 4 {
		t.Fatalf("expected 4 addresses, got %d", len(addrs))
	}
	if addrs[0].ChainType != chainregistry.BTCLegacy || addrs[0].Index != 0 {
		t.Errorf("addrs[0] = %+v, want BTCLegacy index 0", addrs[0])
	}
	if addrs[1].ChainType != chainregistry.BTCLegacy || addrs[1].Index != 1 {
		t.Errorf("addrs[1] = %+v, want BTCLegacy index 1", addrs[1])
	}
	if addrs[2].ChainType != chainregistry.Ethereum || addrs[2].Index != 0 {
		t.Errorf("addrs[2] = %+v, want Ethereum index 0", addrs[2])
	}
	if addrs[3].ChainType != chainregistry.Ethereum || addrs[3].Index != 1 {
		t.Errorf("addrs[3] = %+v, want Ethereum index 1", addrs[3])
	}
}

func TestGenerateBatchRejectsCountOutOfRange(t *testing.T) {
	req := BatchRequest{
		GenerateRequest: GenerateRequest{Mnemonic: fixedPhrase},
		ChainTypes:      []chainregistry.ChainType{chainregistry.Ethereum},
		Count:           0,
	}
	if _, err := GenerateBatch(context.Background(), req); err == nil {
		t.Fatal("expected an error for count below the minimum")
	}
	req.Count = MaxBatchCount + 1
	if _, err := GenerateBatch(context.Background(), req); err == nil {
		t.Fatal("expected an error for count above the maximum")
	}
}

func TestGenerateBatchRejectsEmptyChainTypes(t *testing.T) {
	req := BatchRequest{
		GenerateRequest: GenerateRequest{Mnemonic: fixedPhrase},
		Count:           1,
	}
	if _, err := GenerateBatch(context.Background(), req); err == nil {
		t.Fatal("expected an error for no chain types")
	}
}

func TestGenerateBatchRejectsUnknownChainType(t *testing.T) {
	req := BatchRequest{
		GenerateRequest: GenerateRequest{Mnemonic: fixedPhrase},
		ChainTypes:      []chainregistry.ChainType{chainregistry.ChainType("nope")},
		Count:           1,
	}
	if _, err := GenerateBatch(context.Background(), req); err == nil {
		t.Fatal("expected an error for an unknown chain type")
	}
}

func TestChainInfosNonEmpty(t *testing.T) {
	infos := ChainInfos()
	if len(infos) == 0 {
		t.Fatal("expected at least one chain info")
	}
}
