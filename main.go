package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/ethereum-optimism/rvasm/rvasm/asm"
	"github.com/ethereum-optimism/rvasm/rvasm/cmd"
)

// one group per encoding family, then a mix of ABI register names
var samples = [][]string{
	{"add ra, x2, x3", "sub x2, x3, x1", "sll x3, x1, x2", "slt x1, x3, x2", "sltu x2, x1, x3",
		"xor x3, x2, x1", "srl x1, x2, x3", "sra x2, x3, x1", "or x3, x1, x2", "and x1, x3, x2"},
	{"lui x1 1000", "auipc x2 500"},
	{"jal x1 2000", "jal x1 1234"},
	{"beq x1 x2 20", "bne x2 x3 30", "blt x1 x3 40", "bge x2 x1 50", "bltu x1 x2 60", "bgeu x3 x1 70"},
	{"addi x1 x2 10", "slti x2 x3 20", "sltiu x3 x1 30", "xori x1 x2 40", "ori x2 x3 50", "andi x3 x1 60"},
	{"jalr x3, 300(x1)", "lb x1, 100(x2)", "lh x2, 200(x3)", "lw x3, 300(x1)", "lbu x1, 400(x2)", "lhu x2, 500(x3)"},
	{"slli x1 x2 1", "srli x2 x3 2", "srai x3 x1 3"},
	{"sb x3, 600(x1)", "sh x1, 700(x2)", "sw x2, 800(x3)", "sb a3, 600(t0)"},
	{"slli ra sp 1", "srli s1 t1 2", "srai a1 zero 3", "lw s0, 100(a0)", "sw t0, 200(gp)", "add fp, t1, t2", "ecall"},
	{"ebreak", "fence.tso", "pause"},
}

func main() {
	l := cmd.Logger(os.Stderr, log.LevelInfo)
	for _, group := range samples {
		for _, text := range group {
			ins, err := asm.Encode(text)
			if err != nil {
				l.Crit("failed to encode sample", "insn", text, "err", err)
			}
			fmt.Printf("%s -> %s\n", text, ins)
		}
		fmt.Println()
	}
}
