package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerRaffle)
	types.RegFork(RaffleX, InitFork)
	types.RegExec(RaffleX, InitExecutor)
}

// InitFork 注册分叉高度
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(RaffleX, "Enable", 0)
}

// InitExecutor 注册执行器类型
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(RaffleX, NewType(cfg))
}

// RaffleType exec
type RaffleType struct {
	types.ExecTypeBase
}

// NewType 创建执行器类型
func NewType(cfg *types.Chain33Config) *RaffleType {
	c := &RaffleType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

func (t *RaffleType) GetPayload() types.Message {
	return &RaffleAction{}
}

func (t *RaffleType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Create":     RaffleActionCreate,
		"Buy":        RaffleActionBuy,
		"CommitDraw": RaffleActionCommitDraw,
		"SettleDraw": RaffleActionSettleDraw,
		"Claim":      RaffleActionClaim,
		"Refund":     RaffleActionRefund,
		"Cancel":     RaffleActionCancel,
	}
}

func (t *RaffleType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogRaffleCreate:     {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleCreate"},
		TyLogRaffleBuy:        {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleBuy"},
		TyLogRaffleCommitDraw: {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleCommitDraw"},
		TyLogRaffleSettleDraw: {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleSettleDraw"},
		TyLogRaffleClaim:      {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleClaim"},
		TyLogRaffleRefund:     {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleRefund"},
		TyLogRaffleCancel:     {Ty: reflect.TypeOf(ReceiptRaffle{}), Name: "TyLogRaffleCancel"},
	}
}

func (t *RaffleType) ActionName(tx *types.Transaction) string {
	var action RaffleAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return "unknown-raffle-action-err"
	}
	if action.Ty == RaffleActionCreate && action.GetCreate() != nil {
		return "RaffleCreate"
	} else if action.Ty == RaffleActionBuy && action.GetBuy() != nil {
		return "RaffleBuy"
	} else if action.Ty == RaffleActionCommitDraw && action.GetCommitDraw() != nil {
		return "RaffleCommitDraw"
	} else if action.Ty == RaffleActionSettleDraw && action.GetSettleDraw() != nil {
		return "RaffleSettleDraw"
	} else if action.Ty == RaffleActionClaim && action.GetClaim() != nil {
		return "RaffleClaim"
	} else if action.Ty == RaffleActionRefund && action.GetRefund() != nil {
		return "RaffleRefund"
	} else if action.Ty == RaffleActionCancel && action.GetCancel() != nil {
		return "RaffleCancel"
	}
	return "unknown"
}
