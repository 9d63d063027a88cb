package interp

import (
	"math/bits"
	"strings"
)

// callBuiltin evaluates name as a WASM64 dialect builtin. The second
// return value reports whether name was recognized as a builtin at
// all, so Call can fall through to the function table for anything
// else (polyfill or user-defined functions).
func (it *Interp) callBuiltin(name string, args []uint64) ([]uint64, bool, error) {
	if strings.HasPrefix(name, "eth.") {
		it.host.call(name, args)
		return nil, true, nil
	}

	switch name {
	case "i64.add":
		return one(args[0] + args[1]), true, nil
	case "i64.sub":
		return one(args[0] - args[1]), true, nil
	case "i64.mul":
		return one(args[0] * args[1]), true, nil
	case "i64.div_u":
		if args[1] == 0 {
			return nil, true, &Trap{Reason: "i64.div_u by zero"}
		}
		return one(args[0] / args[1]), true, nil
	case "i64.rem_u":
		if args[1] == 0 {
			return nil, true, &Trap{Reason: "i64.rem_u by zero"}
		}
		return one(args[0] % args[1]), true, nil
	case "i64.and":
		return one(args[0] & args[1]), true, nil
	case "i64.or":
		return one(args[0] | args[1]), true, nil
	case "i64.xor":
		return one(args[0] ^ args[1]), true, nil
	case "i64.shl":
		return one(args[0] << (args[1] % 64)), true, nil
	case "i64.shr_u":
		return one(args[0] >> (args[1] % 64)), true, nil
	case "i64.shr_s":
		return one(uint64(int64(args[0]) >> (args[1] % 64))), true, nil
	case "i64.clz":
		return one(uint64(bits.LeadingZeros64(args[0]))), true, nil
	case "i64.ctz":
		return one(uint64(bits.TrailingZeros64(args[0]))), true, nil
	case "i64.eqz":
		return one(boolU64(args[0] == 0)), true, nil
	case "i64.eq":
		return one(boolU64(args[0] == args[1])), true, nil
	case "i64.ne":
		return one(boolU64(args[0] != args[1])), true, nil
	case "i64.lt_u":
		return one(boolU64(args[0] < args[1])), true, nil
	case "i64.le_u":
		return one(boolU64(args[0] <= args[1])), true, nil
	case "i64.gt_u":
		return one(boolU64(args[0] > args[1])), true, nil
	case "i64.ge_u":
		return one(boolU64(args[0] >= args[1])), true, nil
	case "i64.load":
		return one(it.host.Memory.Load64(args[0])), true, nil
	case "i64.store":
		it.host.Memory.Store64(args[0], args[1])
		return nil, true, nil
	case "i64.load8_u":
		return one(it.host.Memory.Load8(args[0])), true, nil
	case "i64.store8":
		it.host.Memory.Store8(args[0], args[1])
		return nil, true, nil
	case "i32.load":
		return one(it.host.Memory.Load64(args[0]) & 0xffffffff), true, nil
	case "i32.store":
		it.host.Memory.Store64(args[0], args[1]&0xffffffff)
		return nil, true, nil
	case "i32.wrap_i64":
		return one(args[0] & 0xffffffff), true, nil
	case "i64.extend_i32_u":
		return one(args[0] & 0xffffffff), true, nil
	case "unreachable":
		return nil, true, &Trap{Reason: "unreachable"}
	default:
		return nil, false, nil
	}
}

func one(v uint64) []uint64 { return []uint64{v} }

func boolU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
