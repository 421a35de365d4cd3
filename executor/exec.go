package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func (r *Raffle) Exec_Create(payload *pty.RaffleCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleCreate(payload)
}

func (r *Raffle) Exec_Buy(payload *pty.RaffleBuy, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleBuy(payload)
}

func (r *Raffle) Exec_CommitDraw(payload *pty.RaffleCommitDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleCommitDraw(payload)
}

func (r *Raffle) Exec_SettleDraw(payload *pty.RaffleSettleDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleSettleDraw(payload)
}

func (r *Raffle) Exec_Claim(payload *pty.RaffleClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleClaim(payload)
}

func (r *Raffle) Exec_Refund(payload *pty.RaffleRefund, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleRefund(payload)
}

func (r *Raffle) Exec_Cancel(payload *pty.RaffleCancel, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.RaffleCancel(payload)
}
