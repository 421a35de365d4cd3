package rpc

import (
	context "golang.org/x/net/context"

	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func (c *channelClient) Create(ctx context.Context, head *pty.RaffleCreate) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionCreate,
		Value: &pty.RaffleAction_Create{Create: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) Buy(ctx context.Context, head *pty.RaffleBuy) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionBuy,
		Value: &pty.RaffleAction_Buy{Buy: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) CommitDraw(ctx context.Context, head *pty.RaffleCommitDraw) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionCommitDraw,
		Value: &pty.RaffleAction_CommitDraw{CommitDraw: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) SettleDraw(ctx context.Context, head *pty.RaffleSettleDraw) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionSettleDraw,
		Value: &pty.RaffleAction_SettleDraw{SettleDraw: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) Claim(ctx context.Context, head *pty.RaffleClaim) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionClaim,
		Value: &pty.RaffleAction_Claim{Claim: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) Refund(ctx context.Context, head *pty.RaffleRefund) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionRefund,
		Value: &pty.RaffleAction_Refund{Refund: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) Cancel(ctx context.Context, head *pty.RaffleCancel) (*types.UnsignTx, error) {
	val := &pty.RaffleAction{
		Ty:    pty.RaffleActionCancel,
		Value: &pty.RaffleAction_Cancel{Cancel: head},
	}
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.RaffleX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}
