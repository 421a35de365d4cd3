package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func (r *Raffle) execDelLocal(tx *types.Transaction, receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receiptData.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receiptData.Logs {
		switch item.Ty {
		case pty.TyLogRaffleCreate, pty.TyLogRaffleBuy, pty.TyLogRaffleCommitDraw,
			pty.TyLogRaffleSettleDraw, pty.TyLogRaffleClaim, pty.TyLogRaffleRefund,
			pty.TyLogRaffleCancel:
			var rlog pty.ReceiptRaffle
			err := types.Decode(item.Log, &rlog)
			if err != nil {
				return nil, err
			}
			if item.Ty != pty.TyLogRaffleRefund {
				kv := r.rollbackRaffleStatus(&rlog)
				set.KV = append(set.KV, kv...)
			}
			if item.Ty == pty.TyLogRaffleBuy {
				kv := r.delRaffleAddr(&rlog)
				set.KV = append(set.KV, kv...)
			}
		}
	}
	return set, nil
}

func (r *Raffle) ExecDelLocal_Create(payload *pty.RaffleCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_Buy(payload *pty.RaffleBuy, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_CommitDraw(payload *pty.RaffleCommitDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_SettleDraw(payload *pty.RaffleSettleDraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_Claim(payload *pty.RaffleClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_Refund(payload *pty.RaffleRefund, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}

func (r *Raffle) ExecDelLocal_Cancel(payload *pty.RaffleCancel, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(tx, receiptData)
}
