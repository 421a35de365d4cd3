package rpc

import (
	"context"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func (c *Jrpc) RaffleCreateTx(parm *pty.RaffleCreateTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &pty.RaffleCreate{
		Name:         parm.Name,
		TicketPrice:  parm.TicketPrice,
		MaxPerWallet: parm.MaxPerWallet,
		EndTime:      parm.EndTime,
		MinPot:       parm.MinPot,
	}
	reply, err := c.cli.Create(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleBuyTx(parm *pty.RaffleBuyTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &pty.RaffleBuy{
		RaffleId:   parm.RaffleId,
		NumTickets: parm.NumTickets,
	}
	reply, err := c.cli.Buy(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleCommitDrawTx(parm *pty.RaffleCommitDrawTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	commitment, err := common.FromHex(parm.Commitment)
	if err != nil {
		return errors.Wrap(err, "decode commitment")
	}
	head := &pty.RaffleCommitDraw{
		RaffleId:   parm.RaffleId,
		Commitment: commitment,
	}
	reply, err := c.cli.CommitDraw(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleSettleDrawTx(parm *pty.RaffleSettleDrawTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	randomness, err := common.FromHex(parm.Randomness)
	if err != nil {
		return errors.Wrap(err, "decode randomness")
	}
	head := &pty.RaffleSettleDraw{
		RaffleId:   parm.RaffleId,
		Randomness: randomness,
	}
	reply, err := c.cli.SettleDraw(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleClaimTx(parm *pty.RaffleClaimTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &pty.RaffleClaim{
		RaffleId: parm.RaffleId,
	}
	reply, err := c.cli.Claim(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleRefundTx(parm *pty.RaffleRefundTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &pty.RaffleRefund{
		RaffleId: parm.RaffleId,
		Addr:     parm.Addr,
	}
	reply, err := c.cli.Refund(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

func (c *Jrpc) RaffleCancelTx(parm *pty.RaffleCancelTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &pty.RaffleCancel{
		RaffleId: parm.RaffleId,
	}
	reply, err := c.cli.Cancel(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
