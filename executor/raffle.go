package executor

import (
	log "github.com/inconshreveable/log15"

	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

var llog = log.New("module", "execs.raffle")

var driverName = pty.RaffleX

// Init raffle
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	drivers.Register(cfg, driverName, newRaffle, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType 初始化执行器方法列表
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Raffle{}))
}

// GetName raffle name
func GetName() string {
	return newRaffle().GetName()
}

// Raffle 执行器
type Raffle struct {
	drivers.DriverBase
}

func newRaffle() drivers.Driver {
	r := &Raffle{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

// GetDriverName 驱动名
func (r *Raffle) GetDriverName() string {
	return pty.RaffleX
}

// GetPayloadValue raffle action
func (r *Raffle) GetPayloadValue() types.Message {
	return &pty.RaffleAction{}
}

//状态索引：一个抽奖在同一时刻只挂在一个(status, index)之下
func (r *Raffle) saveRaffleStatus(rlog *pty.ReceiptRaffle) (kvs []*types.KeyValue) {
	if rlog.PrevStatus > 0 {
		kvs = append(kvs, delRaffleStatus(rlog.PrevStatus, rlog.PrevIndex))
	}
	kvs = append(kvs, addRaffleStatus(rlog.RaffleId, rlog.Status, rlog.Index))
	return kvs
}

func (r *Raffle) rollbackRaffleStatus(rlog *pty.ReceiptRaffle) (kvs []*types.KeyValue) {
	if rlog.PrevStatus > 0 {
		kvs = append(kvs, addRaffleStatus(rlog.RaffleId, rlog.PrevStatus, rlog.PrevIndex))
	}
	kvs = append(kvs, delRaffleStatus(rlog.Status, rlog.Index))
	return kvs
}

func (r *Raffle) saveRaffleAddr(rlog *pty.ReceiptRaffle) (kvs []*types.KeyValue) {
	record := &pty.RaffleRecord{RaffleId: rlog.RaffleId, Status: rlog.Status, Index: rlog.Index}
	kv := &types.KeyValue{Key: calcRaffleAddrKey(rlog.Addr, rlog.Index), Value: types.Encode(record)}
	kvs = append(kvs, kv)
	return kvs
}

func (r *Raffle) delRaffleAddr(rlog *pty.ReceiptRaffle) (kvs []*types.KeyValue) {
	kv := &types.KeyValue{Key: calcRaffleAddrKey(rlog.Addr, rlog.Index), Value: nil}
	kvs = append(kvs, kv)
	return kvs
}

func addRaffleStatus(raffleId string, status int32, index int64) *types.KeyValue {
	record := &pty.RaffleRecord{RaffleId: raffleId, Status: status, Index: index}
	kv := &types.KeyValue{}
	kv.Key = calcRaffleStatusKey(status, index)
	kv.Value = types.Encode(record)
	return kv
}

func delRaffleStatus(status int32, index int64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = calcRaffleStatusKey(status, index)
	kv.Value = nil
	return kv
}
